package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/jsontypings/pkg/errors"
)

func TestUnion(t *testing.T) {
	assert.Equal(t, "unknown", Union(nil, "    "))
	assert.Equal(t, "string", Union([]string{"string"}, "    "))
	assert.Equal(t, "string\n    | number\n    | boolean", Union([]string{"string", "number", "boolean"}, "    "))
	assert.Equal(t, "a\n\t| b", Union([]string{"a", "b"}, "\t"))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  t\n  e\n  s\n  t", Indent("  ", "t\ne\ns\nt"))
	assert.Equal(t, "  a\n\n  b\n", Indent("  ", "a\n\nb\n"))
}

func TestInterfaceFormat(t *testing.T) {
	cfg := DefaultConfig()

	empty := NewInterface("all")
	assert.Equal(t, "export interface All {\n}", empty.Format(cfg))

	i := NewInterface("user_info")
	i.Fields = []Field{
		{Key: "b", Value: "number", Optional: true},
		{Key: "a", Value: "string"},
	}
	assert.Equal(t, "export interface UserInfo {\n    b?: number;\n    a: string;\n}", i.Format(cfg))

	cfg.Sort = true
	cfg.Indentation = "\t"
	assert.Equal(t, "export interface UserInfo {\n\ta: string;\n\tb?: number;\n}", i.Format(cfg))
	assert.Equal(t, "b", i.Fields[0].Key, "sorting must not reorder the interface itself")
}

func TestNamespaceFormatWithoutEntries(t *testing.T) {
	ns := NewNamespace("All")
	assert.Equal(t, "export interface All {\n}", ns.Format(DefaultConfig()))
}

func TestNamespaceEntryOrder(t *testing.T) {
	ns := NewNamespace("All")
	ns.AddNamespace("B", NewNamespace("B"))
	ns.AddAlias("B", "number")
	ns.AddAlias("A", "string")

	want := "export interface All {\n}\n\n" +
		"export namespace All {\n" +
		"    export type A = string;\n" +
		"\n" +
		"    export type B = number;\n" +
		"\n" +
		"    export interface B {\n" +
		"    }\n" +
		"}"
	assert.Equal(t, want, ns.Format(DefaultConfig()))
}

func TestPropertyName(t *testing.T) {
	assert.Equal(t, "name", PropertyName("name", `"`))
	assert.Equal(t, "$ref", PropertyName("$ref", `"`))
	assert.Equal(t, "_id2", PropertyName("_id2", `"`))
	assert.Equal(t, `"2nd"`, PropertyName("2nd", `"`))
	assert.Equal(t, `'a b'`, PropertyName("a b", `'`))
	assert.Equal(t, `""`, PropertyName("", `"`))
}

func TestConfigDefaultsAndValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, `"`, cfg.StringDelimiter)
	assert.Equal(t, "    ", cfg.Indentation)
	assert.Equal(t, "latest", cfg.TypeScriptVersion)
	assert.Equal(t, StrategyTree, cfg.Strategy)
	assert.False(t, cfg.Sort)
	assert.False(t, cfg.WrapArrays)

	var zero Config
	assert.Error(t, zero.Validate())
	zero.SetDefaults()
	assert.Equal(t, DefaultConfig(), zero)
}

func TestParseStrategy(t *testing.T) {
	k, err := ParseStrategy(" Tree ")
	require.NoError(t, err)
	assert.Equal(t, StrategyTree, k)

	k, err = ParseStrategy("family")
	require.NoError(t, err)
	assert.Equal(t, StrategyFamily, k)

	_, err = ParseStrategy("forest")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))

	_, err = StrategyFor("forest")
	assert.Error(t, err)
}
