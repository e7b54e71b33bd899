// Package samples reads sample documents and turns them into values for
// [typing.Build].
//
// # Input Layout
//
// A sample path is either a file or a directory:
//
//   - A file holds one or more JSON or YAML documents. A single document
//     that is an array contributes its elements as samples; any other
//     document is one sample.
//   - A directory contributes every *.json, *.yaml and *.yml file in it,
//     sorted by name. Each document is one sample, arrays included.
//
// # Decoding
//
// JSON is decoded token by token with [github.com/goccy/go-json] so that
// object keys keep their document order, which fixes the field order of
// the generated interfaces. YAML is decoded through [gopkg.in/yaml.v3]
// nodes for the same reason.
//
// # Queries
//
// [Select] applies a jq expression to every document before samples are
// collected, for example ".data.items[]" to type the elements of a nested
// list. Queries run on [github.com/itchyny/gojq], which has no notion of
// key order, so objects produced by a query have sorted keys.
//
// [typing.Build]: github.com/matzehuels/jsontypings/pkg/typing.Build
package samples
