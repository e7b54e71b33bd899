package typing

import (
	"github.com/matzehuels/jsontypings/pkg/casing"
	"github.com/matzehuels/jsontypings/pkg/dag"
	"github.com/matzehuels/jsontypings/pkg/errors"
)

// Option configures [Build].
type Option func(*buildOptions)

type buildOptions struct {
	partition Partition
}

// WithPartition selects the partition policy for values of one position.
// The default is [PartitionRuns].
func WithPartition(p Partition) Option {
	return func(o *buildOptions) {
		if p != "" {
			o.partition = p
		}
	}
}

// pending is an object whose samples still have to be grouped.
type pending struct {
	owner   dag.NodeID
	samples []any
}

// slot is a group of same-kind values waiting to be attached below parent.
// owner and key identify the field the values came from.
type slot struct {
	parent dag.NodeID
	owner  dag.NodeID
	key    string
	group  Group
}

// Build infers the typing graph for samples under the root name.
//
// Objects are expanded from a LIFO work-list. For each object, its samples
// are grouped by field, each field's values are partitioned by kind, and
// every group becomes one or more shape nodes below the field. Nested
// arrays are flattened into the same field scope; nested objects are pushed
// back onto the work-list.
//
// Build never fails on sample content. An error is returned only if an
// internal invariant is broken, and carries [errors.ErrCodeInternal].
func Build(name string, samples []any, opts ...Option) (*Graph, error) {
	o := buildOptions{partition: PartitionRuns}
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{g: dag.New[Node](), partition: o.partition}
	root := b.g.AddNode(Object{Name: name})
	if root != Root {
		return nil, errors.New(errors.ErrCodeInternal, "root object was assigned node %d", root)
	}

	work := []pending{{owner: root, samples: samples}}
	for len(work) > 0 {
		item := work[len(work)-1]
		work = work[:len(work)-1]

		pushed, err := b.expandObject(item)
		if err != nil {
			return nil, err
		}
		work = append(work, pushed...)
	}

	if err := b.g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "typing graph for %q", name)
	}
	return &Graph{name: name, dag: b.g}, nil
}

type builder struct {
	g         *dag.DAG[Node]
	partition Partition
}

// expandObject adds the field slots of one object and everything below them
// except nested objects, which are returned for later expansion.
func (b *builder) expandObject(item pending) ([]pending, error) {
	var nested []pending
	for _, field := range GroupFields(item.samples) {
		fieldID := b.g.AddNode(ObjectField{Key: field.Key, Optional: field.Optional, Owner: item.owner})
		if err := b.link(item.owner, fieldID); err != nil {
			return nil, err
		}

		var stack []slot
		stack = b.pushGroups(stack, fieldID, item.owner, field.Key, field.Values)
		for len(stack) > 0 {
			s := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			switch s.group.Kind {
			case KindNull:
				if err := b.attach(s.parent, Null{}); err != nil {
					return nil, err
				}
			case KindBoolean:
				if err := b.attach(s.parent, Boolean{}); err != nil {
					return nil, err
				}
			case KindNumber:
				if err := b.attach(s.parent, Number{}); err != nil {
					return nil, err
				}
			case KindString:
				strs := make([]string, len(s.group.Values))
				for i, v := range s.group.Values {
					strs[i] = asString(v)
				}
				for _, n := range ClassifyStrings(strs) {
					if err := b.attach(s.parent, n); err != nil {
						return nil, err
					}
				}
			case KindArray:
				arrID := b.g.AddNode(Array{Owner: s.owner, Key: s.key})
				if err := b.link(s.parent, arrID); err != nil {
					return nil, err
				}
				var elems []any
				for _, v := range s.group.Values {
					if a, ok := v.([]any); ok {
						elems = append(elems, a...)
					}
				}
				stack = b.pushGroups(stack, arrID, s.owner, s.key, elems)
			case KindObject:
				objID := b.g.AddNode(Object{Name: casing.Pascal(s.key)})
				if err := b.link(s.parent, objID); err != nil {
					return nil, err
				}
				nested = append(nested, pending{owner: objID, samples: s.group.Values})
			default:
				return nil, errors.New(errors.ErrCodeInternal, "unhandled value kind %s", s.group.Kind)
			}
		}
	}
	return nested, nil
}

// pushGroups partitions values and pushes the groups onto stack in reverse,
// so that popping yields them in sample order.
func (b *builder) pushGroups(stack []slot, parent, owner dag.NodeID, key string, values []any) []slot {
	groups := b.partition.Split(values)
	for i := len(groups) - 1; i >= 0; i-- {
		stack = append(stack, slot{parent: parent, owner: owner, key: key, group: groups[i]})
	}
	return stack
}

func (b *builder) attach(parent dag.NodeID, n Node) error {
	return b.link(parent, b.g.AddNode(n))
}

func (b *builder) link(from, to dag.NodeID) error {
	if err := b.g.AddEdge(from, to); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "link node %d to %d", from, to)
	}
	return nil
}
