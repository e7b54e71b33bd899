package render

import (
	"github.com/matzehuels/jsontypings/pkg/casing"
	"github.com/matzehuels/jsontypings/pkg/dag"
	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// Tree renders every object as an interface inside a namespace of the same
// name. Named sub-types of an object (nested objects and union aliases)
// are declared inside the namespace of the object that owns the field.
type Tree struct{}

// Render implements Strategy. The result ends with a newline.
func (t Tree) Render(g *typing.Graph, cfg Config) (string, error) {
	ns, err := t.Namespace(g, cfg)
	if err != nil {
		return "", err
	}
	return ns.Format(cfg) + "\n", nil
}

// Namespace resolves g into the namespace of its root object.
func (Tree) Namespace(g *typing.Graph, cfg Config) (*Namespace, error) {
	order, err := g.RenderOrder()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "order typing graph")
	}

	r := &treeRenderer{
		g:          g,
		cfg:        cfg,
		values:     make(map[dag.NodeID]string, len(order)),
		namespaces: make(map[dag.NodeID]*Namespace),
	}
	for _, id := range order {
		if err := r.resolve(id); err != nil {
			return nil, err
		}
	}

	root, ok := r.namespaces[typing.Root]
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "root object has no namespace")
	}
	return root, nil
}

// treeRenderer holds the side tables of one render call. A value or
// namespace is removed from its table once the parent consumes it.
type treeRenderer struct {
	g          *typing.Graph
	cfg        Config
	values     map[dag.NodeID]string
	namespaces map[dag.NodeID]*Namespace
}

func (r *treeRenderer) resolve(id dag.NodeID) error {
	n, ok := r.g.Node(id)
	if !ok {
		return errors.New(errors.ErrCodeInternal, "node %d does not exist", id)
	}

	switch n := n.(type) {
	case typing.Null:
		r.values[id] = "null"
	case typing.Boolean:
		r.values[id] = "boolean"
	case typing.Number:
		r.values[id] = "number"
	case typing.String:
		r.values[id] = "string"
	case typing.LiteralType:
		r.values[id] = n.Value.Format(r.cfg.StringDelimiter)
	case typing.Array:
		return r.resolveArray(id, n)
	case typing.ObjectField:
		return r.resolveField(id, n)
	case typing.Object:
		return r.resolveObject(id, n)
	default:
		return errors.New(errors.ErrCodeInternal, "node %d has unsupported shape %T", id, n)
	}
	return nil
}

func (r *treeRenderer) resolveArray(id dag.NodeID, n typing.Array) error {
	owner, members, err := r.fold(id, n.Owner)
	if err != nil {
		return err
	}

	switch {
	case len(members) > 1:
		alias := casing.Pascal(n.Key)
		owner.AddAlias(alias, Union(members, r.cfg.Indentation))
		r.values[id] = "Array<" + owner.Name + "." + alias + ">"
	case r.cfg.WrapArrays:
		r.values[id] = "Array<" + Union(members, r.cfg.Indentation) + ">"
	default:
		r.values[id] = Union(members, r.cfg.Indentation)
	}
	return nil
}

func (r *treeRenderer) resolveField(id dag.NodeID, n typing.ObjectField) error {
	owner, members, err := r.fold(id, n.Owner)
	if err != nil {
		return err
	}

	if len(members) > 1 {
		alias := casing.Pascal(n.Key)
		owner.AddAlias(alias, Union(members, r.cfg.Indentation))
		r.values[id] = owner.Name + "." + alias
		return nil
	}
	r.values[id] = Union(members, r.cfg.Indentation)
	return nil
}

func (r *treeRenderer) resolveObject(id dag.NodeID, n typing.Object) error {
	iface := NewInterface(n.Name)
	for _, child := range r.g.Children(id) {
		cn, _ := r.g.Node(child)
		field, ok := cn.(typing.ObjectField)
		if !ok {
			return errors.New(errors.ErrCodeInternal, "object %q has non-field child %d (%s)", n.Name, child, cn.Label())
		}
		value, ok := r.take(child)
		if !ok {
			return errors.New(errors.ErrCodeInternal, "field %q of %q was not resolved", field.Key, n.Name)
		}
		iface.Fields = append(iface.Fields, Field{Key: field.Key, Value: value, Optional: field.Optional})
	}

	ns := r.namespaceFor(id, n.Name)
	ns.Interface = iface
	r.values[id] = ns.Name
	return nil
}

// fold collects the resolved values of id's children in child order. A
// child that carries a namespace is qualified with the owner's name and
// its namespace moves into the owner's namespace.
func (r *treeRenderer) fold(id, ownerID dag.NodeID) (*Namespace, []string, error) {
	ownerName, ok := r.g.ObjectName(ownerID)
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInternal, "node %d refers to owner %d which is not an object", id, ownerID)
	}
	owner := r.namespaceFor(ownerID, ownerName)

	children := r.g.Children(id)
	members := make([]string, 0, len(children))
	for _, child := range children {
		value, ok := r.take(child)
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeInternal, "child %d of node %d was not resolved", child, id)
		}
		if ns, ok := r.namespaces[child]; ok {
			delete(r.namespaces, child)
			owner.AddNamespace(value, ns)
			value = owner.Name + "." + value
		}
		members = append(members, value)
	}
	return owner, members, nil
}

func (r *treeRenderer) take(id dag.NodeID) (string, bool) {
	v, ok := r.values[id]
	if ok {
		delete(r.values, id)
	}
	return v, ok
}

func (r *treeRenderer) namespaceFor(id dag.NodeID, name string) *Namespace {
	ns, ok := r.namespaces[id]
	if !ok {
		ns = NewNamespace(name)
		r.namespaces[id] = ns
	}
	return ns
}
