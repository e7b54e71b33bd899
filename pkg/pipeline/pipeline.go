// Package pipeline provides the typings pipeline shared by the CLI and the
// HTTP API.
//
// # Architecture
//
// A run goes through three stages per root:
//
//  1. Samples: decode the input documents and apply the optional query
//  2. Build: infer the typing graph ([typing.Build])
//  3. Render: turn the graph into declarations ([render.Render])
//
// The rendered result of every root is cached under a key derived from the
// raw input bytes and all options that affect the output, so unchanged
// inputs skip all three stages.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	in, _ := samples.ReadPath("fixtures/")
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Name:   "Payload",
//	    Input:  in,
//	    Config: render.DefaultConfig(),
//	})
//	fmt.Print(result.Output)
//
// With PerFile set, every input document becomes its own root named after
// the file, and roots are processed in parallel.
package pipeline

import (
	"runtime"
	"time"

	"github.com/matzehuels/jsontypings/pkg/cache"
	"github.com/matzehuels/jsontypings/pkg/casing"
	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/render"
	"github.com/matzehuels/jsontypings/pkg/samples"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultName is the root interface name.
	DefaultName = "All"

	// FormatDOT and FormatSVG are the typing-graph dump formats.
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidGraphFormats is the set of supported graph dump formats.
var ValidGraphFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// ValidateGraphFormat checks that a graph dump format is valid.
func ValidateGraphFormat(format string) error {
	if !ValidGraphFormats[format] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid graph format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Name is the root interface name. Ignored with PerFile.
	Name string `json:"name"`

	// Input holds the raw sample documents.
	Input samples.Input `json:"-"`

	// Query is an optional jq expression applied to every document.
	Query string `json:"query,omitempty"`

	// PerFile renders one root per input document.
	PerFile bool `json:"per_file,omitempty"`

	// Config controls rendering and partitioning.
	Config render.Config `json:"config"`

	// Refresh skips the cache lookup. Results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Workers bounds the roots processed in parallel. Zero means GOMAXPROCS.
	Workers int `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	o.Name = casing.Pascal(o.Name)
	if err := errors.ValidateTypeName(o.Name); err != nil {
		return err
	}
	o.Config.SetDefaults()
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Query != "" {
		if _, err := samples.NewSelector(o.Query); err != nil {
			return err
		}
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	o.validated = true
	return nil
}

// TypingsKeyOpts returns the cache key options for root name.
func (o *Options) TypingsKeyOpts(name string) cache.TypingsKeyOpts {
	return cache.TypingsKeyOpts{
		Name:              name,
		Query:             o.Query,
		StringDelimiter:   o.Config.StringDelimiter,
		Indentation:       o.Config.Indentation,
		Sort:              o.Config.Sort,
		TypeScriptVersion: o.Config.TypeScriptVersion,
		Strategy:          string(o.Config.Strategy),
		Partition:         string(o.Config.Partition),
		WrapArrays:        o.Config.WrapArrays,
	}
}

// GraphOptions configures a typing-graph dump.
type GraphOptions struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed,omitempty"`
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and API responses.
	RunID string `json:"run_id"`

	// Output is the declarations of all roots, in input order.
	Output string `json:"output"`

	// Roots holds the per-root results.
	Roots []RootResult `json:"roots"`

	Stats     Stats     `json:"stats"`
	CacheInfo CacheInfo `json:"cache"`
}

// RootResult is the result for one root interface.
type RootResult struct {
	Name    string       `json:"name"`
	Source  string       `json:"source,omitempty"`
	Output  string       `json:"output"`
	Samples int          `json:"samples"`
	Graph   typing.Stats `json:"graph"`
	Cached  bool         `json:"cached"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Roots      int           `json:"roots"`
	Samples    int           `json:"samples"`
	Nodes      int           `json:"nodes"`
	BuildTime  time.Duration `json:"build_time"`
	RenderTime time.Duration `json:"render_time"`
	TotalTime  time.Duration `json:"total_time"`
}

// CacheInfo counts cache hits and misses over all roots.
type CacheInfo struct {
	Hits   int `json:"hits"`
	Misses int `json:"misses"`
}
