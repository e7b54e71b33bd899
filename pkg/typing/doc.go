// Package typing infers a typing graph from sample JSON values.
//
// # Overview
//
// [Build] takes a root name and a list of samples and produces a [Graph]
// whose nodes describe the shapes that occur at every position of the
// samples. The root is always an [Object] at node [Root]. Objects point to
// their [ObjectField] slots, fields point to every distinct value shape
// observed for them, and [Array] nodes point to every distinct element
// shape:
//
//	Object(All)
//	├── ObjectField(id)      → Number
//	├── ObjectField(status)  → Literal("active"), Literal("closed")
//	└── ObjectField(tags?)   → Array → String
//
// # Samples
//
// Samples are plain Go values: nil, bool, numbers, string, []any, and
// objects as either [*Map] (ordered) or map[string]any (keys sorted).
// Values of any other type are treated as strings. Top-level samples that
// are not objects contribute nothing to fields.
//
// # Strings
//
// A run of string values is classified by [ClassifyStrings] into a single
// [String] node, an enumeration of string literals, or a set of template
// literals where numeric tokens are replaced by ${number} or ${bigint}.
// [NumericTokens] implements the numeric token grammar.
//
// # Partitioning
//
// Values at one position are split into same-kind groups before shape nodes
// are created. [PartitionRuns] (the default) splits into consecutive runs,
// [PartitionKind] merges all values of a kind. Use [WithPartition] to pick
// one.
package typing
