package typing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func literalTexts(nodes []Node) []string {
	var out []string
	for _, n := range nodes {
		if l, ok := n.(LiteralType); ok {
			out = append(out, l.Value.Format(`"`))
		}
	}
	return out
}

func TestAnalyzeStrings(t *testing.T) {
	st := AnalyzeStrings([]string{"b", "", "a", "b", "héllo", "x1"})
	assert.Equal(t, []string{"b", "a", "héllo", "x1"}, st.Unique)
	assert.Equal(t, 6, st.MaxLen, "lengths count bytes")
	assert.Equal(t, 1, st.Duplicates)
	assert.Equal(t, 1, st.Numeric)
}

func TestClassifyStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []Node
	}{
		{
			name: "enumeration in first-occurrence order",
			in:   []string{"open", "closed", "open", "pending"},
			want: []Node{
				LiteralType{Value: StringLiteral("open")},
				LiteralType{Value: StringLiteral("closed")},
				LiteralType{Value: StringLiteral("pending")},
			},
		},
		{
			name: "no duplicates widens to string",
			in:   []string{"open", "closed"},
			want: []Node{String{}},
		},
		{
			name: "long values widen to string",
			in:   []string{"this is longer than sixteen", "this is longer than sixteen"},
			want: []Node{String{}},
		},
		{
			name: "multibyte values are measured in bytes",
			in:   []string{"日本語日本語", "日本語日本語"},
			want: []Node{String{}},
		},
		{
			name: "multibyte values within the byte limit",
			in:   []string{"日本語日本", "日本語日本"},
			want: []Node{LiteralType{Value: StringLiteral("日本語日本")}},
		},
		{
			name: "numeric values collapse to one template",
			in:   []string{"id_1", "id_2", "id_10", "id_1"},
			want: []Node{LiteralType{Value: TemplateLiteral("id_${number}")}},
		},
		{
			name: "distinct templates are kept apart",
			in:   []string{"a1", "b2", "a3", "a1"},
			want: []Node{
				LiteralType{Value: TemplateLiteral("a${number}")},
				LiteralType{Value: TemplateLiteral("b${number}")},
			},
		},
		{
			name: "bigint suffix",
			in:   []string{"10n", "20n", "10n"},
			want: []Node{LiteralType{Value: TemplateLiteral("${bigint}")}},
		},
		{
			name: "numeric minority stays literal",
			in:   []string{"a", "b", "c1", "a"},
			want: []Node{
				LiteralType{Value: StringLiteral("a")},
				LiteralType{Value: StringLiteral("b")},
				LiteralType{Value: StringLiteral("c1")},
			},
		},
		{
			name: "templates allow up to 32 runes",
			in:   []string{"order-" + strings.Repeat("1", 20), "order-" + strings.Repeat("1", 20)},
			want: []Node{LiteralType{Value: TemplateLiteral("order-${number}")}},
		},
		{
			name: "only empty strings",
			in:   []string{"", "", ""},
			want: []Node{String{}},
		},
		{
			name: "no values",
			in:   nil,
			want: []Node{String{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStrings(tt.in))
		})
	}
}

func TestClassifyStringsRenderedOrder(t *testing.T) {
	got := literalTexts(ClassifyStrings([]string{"z", "y", "x", "z"}))
	assert.Equal(t, []string{`"z"`, `"y"`, `"x"`}, got)
}
