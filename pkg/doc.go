// Package pkg provides the libraries behind jsontypings.
//
// # Overview
//
// jsontypings infers TypeScript declarations from a set of JSON or YAML
// samples. The pkg directory is organized by stage:
//
//  1. [samples] - reading and decoding sample documents, jq selection
//  2. [typing] - the typing graph and the string classifier
//  3. [render] - turning the graph into interfaces, namespaces and unions
//  4. [pipeline] - orchestration with caching (samples → build → render)
//
// Supporting packages:
//
//   - [dag] - the generic directed acyclic graph under [typing]
//   - [casing] - identifier casing for type names
//   - [cache] - file, memory and redis result caches
//   - [config] - layered settings (defaults, TOML, environment)
//   - [errors] - coded errors shared by the CLI and the HTTP API
//   - [observability] - optional pipeline, cache and server hooks
//   - [buildinfo] - version information set at build time
//
// # Architecture
//
//	sample files / request body
//	         ↓
//	    [samples] (decode, select)
//	         ↓
//	    [typing] (build the typing graph)
//	         ↓
//	    [render] (declarations, or a DOT dump via render/nodelink)
//	         ↓
//	    index.d.ts
//
// # Quick Start
//
//	in, err := samples.ReadPath("responses.json")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: in})
//	fmt.Print(result.Output)
//
// [samples]: github.com/matzehuels/jsontypings/pkg/samples
// [typing]: github.com/matzehuels/jsontypings/pkg/typing
// [render]: github.com/matzehuels/jsontypings/pkg/render
// [pipeline]: github.com/matzehuels/jsontypings/pkg/pipeline
// [dag]: github.com/matzehuels/jsontypings/pkg/dag
// [casing]: github.com/matzehuels/jsontypings/pkg/casing
// [cache]: github.com/matzehuels/jsontypings/pkg/cache
// [config]: github.com/matzehuels/jsontypings/pkg/config
// [errors]: github.com/matzehuels/jsontypings/pkg/errors
// [observability]: github.com/matzehuels/jsontypings/pkg/observability
// [buildinfo]: github.com/matzehuels/jsontypings/pkg/buildinfo
package pkg
