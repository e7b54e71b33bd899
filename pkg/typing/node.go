package typing

import (
	"fmt"

	"github.com/matzehuels/jsontypings/pkg/dag"
)

// Node is a shape node of the typing graph. The set of implementations is
// closed: Null, Boolean, Number, String, LiteralType, Array, Object and
// ObjectField. Consumers switch over the concrete type.
type Node interface {
	// Label returns a short human-readable description used in graph dumps
	// and log output.
	Label() string

	node()
}

// Null is the JSON null shape.
type Null struct{}

// Boolean is the JSON boolean shape.
type Boolean struct{}

// Number is the JSON number shape.
type Number struct{}

// String is the unconstrained string shape.
type String struct{}

// LiteralType is a single literal value.
type LiteralType struct {
	Value Literal
}

// Array is an array position. Its children are the element shapes.
// Owner is the nearest enclosing Object and is only used to qualify names;
// it is never an edge.
type Array struct {
	Owner dag.NodeID
	Key   string
}

// Object is a named record shape. Its children are ObjectField nodes.
type Object struct {
	Name string
}

// ObjectField is a field slot of an object. Its children are the shapes
// observed for the field. Owner is the Object the field belongs to.
type ObjectField struct {
	Key      string
	Optional bool
	Owner    dag.NodeID
}

func (Null) node()        {}
func (Boolean) node()     {}
func (Number) node()      {}
func (String) node()      {}
func (LiteralType) node() {}
func (Array) node()       {}
func (Object) node()      {}
func (ObjectField) node() {}

func (Null) Label() string          { return "null" }
func (Boolean) Label() string       { return "boolean" }
func (Number) Label() string        { return "number" }
func (String) Label() string        { return "string" }
func (n LiteralType) Label() string { return n.Value.String() }
func (n Array) Label() string       { return fmt.Sprintf("array %s (owner %d)", n.Key, n.Owner) }
func (n Object) Label() string      { return "object " + n.Name }

func (n ObjectField) Label() string {
	if n.Optional {
		return fmt.Sprintf("field %s? (owner %d)", n.Key, n.Owner)
	}
	return fmt.Sprintf("field %s (owner %d)", n.Key, n.Owner)
}
