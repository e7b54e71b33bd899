package typing

import (
	"fmt"
	"strings"
)

// Partition selects how the values observed at one position are split into
// same-kind groups before shape nodes are created.
type Partition string

const (
	// PartitionRuns groups maximal runs of consecutive same-kind values.
	// Interleaved kinds such as [1, "a", 2] yield two separate number groups.
	PartitionRuns Partition = "runs"
	// PartitionKind groups all values of a kind together. Groups are ordered
	// by the first occurrence of their kind.
	PartitionKind Partition = "kind"
)

// ParsePartition parses a partition policy name. The empty string selects
// [PartitionRuns].
func ParsePartition(s string) (Partition, error) {
	switch p := Partition(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PartitionRuns, nil
	case PartitionRuns, PartitionKind:
		return p, nil
	default:
		return "", fmt.Errorf("unknown partition policy %q (want %q or %q)", s, PartitionRuns, PartitionKind)
	}
}

// Group is a list of values that share one kind.
type Group struct {
	Kind   Kind
	Values []any
}

// Split partitions values according to the policy. The result never holds
// an empty group.
func (p Partition) Split(values []any) []Group {
	if p == PartitionKind {
		return splitByKind(values)
	}
	return splitRuns(values)
}

func splitRuns(values []any) []Group {
	var groups []Group
	for _, v := range values {
		k := KindOf(v)
		if n := len(groups); n > 0 && groups[n-1].Kind == k {
			groups[n-1].Values = append(groups[n-1].Values, v)
			continue
		}
		groups = append(groups, Group{Kind: k, Values: []any{v}})
	}
	return groups
}

func splitByKind(values []any) []Group {
	var groups []Group
	index := make(map[Kind]int)
	for _, v := range values {
		k := KindOf(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Kind: k})
		}
		groups[i].Values = append(groups[i].Values, v)
	}
	return groups
}
