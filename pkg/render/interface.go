package render

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/jsontypings/pkg/casing"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// Field is one member of an interface declaration.
type Field struct {
	Key      string
	Value    string
	Optional bool
}

// Interface is a named record declaration.
type Interface struct {
	Name   string
	Fields []Field
}

// NewInterface returns an empty interface. The name is converted to
// PascalCase.
func NewInterface(name string) *Interface {
	return &Interface{Name: casing.Pascal(name)}
}

// Format renders the interface:
//
//	export interface Name {
//	    key: value;
//	    other?: value;
//	}
//
// With cfg.Sort, required fields come first and each group is ordered by
// key. Otherwise fields keep their insertion order.
func (i *Interface) Format(cfg Config) string {
	var b strings.Builder
	b.WriteString("export interface ")
	b.WriteString(i.Name)
	b.WriteString(" {\n")

	fields := i.Fields
	if cfg.Sort {
		fields = slices.Clone(fields)
		slices.SortStableFunc(fields, compareFields)
	}
	for _, f := range fields {
		b.WriteString(cfg.Indentation)
		b.WriteString(PropertyName(f.Key, cfg.StringDelimiter))
		if f.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(f.Value)
		b.WriteString(";\n")
	}

	b.WriteString("}")
	return b.String()
}

func compareFields(a, b Field) int {
	if a.Optional != b.Optional {
		if a.Optional {
			return 1
		}
		return -1
	}
	return cmp.Compare(a.Key, b.Key)
}

// PropertyName returns key as a property name. Keys that are not plain
// identifiers are quoted with delim.
func PropertyName(key, delim string) string {
	if isIdentifier(key) {
		return key
	}
	return typing.StringLiteral(key).Format(delim)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
