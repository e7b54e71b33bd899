package render

import (
	"cmp"
	"slices"
	"strings"

	"github.com/matzehuels/jsontypings/pkg/casing"
)

// EntryKind distinguishes namespace entries. Aliases order before nested
// namespaces that share a key.
type EntryKind int

const (
	// EntryAlias is a type alias: export type Key = Value;
	EntryAlias EntryKind = iota
	// EntryNamespace is a nested namespace declaration.
	EntryNamespace
)

// Entry is one member of a namespace block.
type Entry struct {
	Key  string
	Kind EntryKind

	// Alias is the aliased type for EntryAlias.
	Alias string
	// Namespace is the nested declaration for EntryNamespace.
	Namespace *Namespace
}

// Namespace groups the interface of one object together with the aliases
// and nested namespaces its fields refer to.
type Namespace struct {
	Name      string
	Interface *Interface
	Entries   []Entry
}

// NewNamespace returns a namespace holding an empty interface of the same
// name. The name is converted to PascalCase.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		Name:      casing.Pascal(name),
		Interface: NewInterface(name),
	}
}

// AddAlias registers "export type key = value;".
func (n *Namespace) AddAlias(key, value string) {
	n.Entries = append(n.Entries, Entry{Key: key, Kind: EntryAlias, Alias: value})
}

// AddNamespace registers a nested namespace under key.
func (n *Namespace) AddNamespace(key string, ns *Namespace) {
	n.Entries = append(n.Entries, Entry{Key: key, Kind: EntryNamespace, Namespace: ns})
}

// Format renders the interface and, if there are entries, a namespace
// block holding them:
//
//	export interface Name {
//	    ...
//	}
//
//	export namespace Name {
//	    export type Alias = A
//	        | B;
//
//	    export interface Nested {
//	        ...
//	    }
//	}
//
// Entries are ordered by key, then aliases before namespaces, then by their
// rendered text, independent of insertion order and cfg.Sort.
func (n *Namespace) Format(cfg Config) string {
	var b strings.Builder
	b.WriteString(n.Interface.Format(cfg))
	if len(n.Entries) == 0 {
		return b.String()
	}

	type rendered struct {
		key  string
		kind EntryKind
		text string
	}
	entries := make([]rendered, 0, len(n.Entries))
	for _, e := range n.Entries {
		r := rendered{key: e.Key, kind: e.Kind}
		switch e.Kind {
		case EntryAlias:
			r.text = "export type " + e.Key + " = " + e.Alias + ";"
		case EntryNamespace:
			r.text = e.Namespace.Format(cfg)
		}
		entries = append(entries, r)
	}
	slices.SortStableFunc(entries, func(a, b rendered) int {
		return cmp.Or(
			cmp.Compare(a.key, b.key),
			cmp.Compare(a.kind, b.kind),
			cmp.Compare(a.text, b.text),
		)
	})

	b.WriteString("\n\nexport namespace ")
	b.WriteString(n.Name)
	b.WriteString(" {\n")
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Indent(cfg.Indentation, e.text+"\n"))
	}
	b.WriteString("}")
	return b.String()
}
