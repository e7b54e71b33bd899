package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/jsontypings/pkg/cache"
	"github.com/matzehuels/jsontypings/pkg/casing"
	"github.com/matzehuels/jsontypings/pkg/observability"
	"github.com/matzehuels/jsontypings/pkg/render"
	"github.com/matzehuels/jsontypings/pkg/samples"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner keeps no per-run state. Multiple goroutines can use the same
// Runner with different options; concurrent runs for the same cache key
// are collapsed into one computation.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	flight singleflight.Group
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// root is one unit of work: a root name and the documents it is built from.
type root struct {
	name  string
	input samples.Input
}

// cachedRoot is the cache payload for one rendered root.
type cachedRoot struct {
	Output  string       `json:"output"`
	Samples int          `json:"samples"`
	Graph   typing.Stats `json:"graph"`
}

// Execute runs samples → build → render for every root.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	result := &Result{RunID: uuid.NewString()}
	logger := r.Logger.With("run", result.RunID[:8])

	roots := planRoots(opts)
	logger.Debug("planned roots", "roots", len(roots), "documents", len(opts.Input.Documents), "per_file", opts.PerFile)

	results := make([]RootResult, len(roots))
	timings := make([][2]time.Duration, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, rt := range roots {
		g.Go(func() error {
			res, t, err := r.runRoot(gctx, logger, rt, &opts)
			if err != nil {
				if rt.input.Path != "" && opts.PerFile {
					return fmt.Errorf("%s: %w", rt.input.Path, err)
				}
				return err
			}
			results[i] = res
			timings[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outputs := make([]string, len(results))
	for i, res := range results {
		outputs[i] = res.Output
		result.Stats.Samples += res.Samples
		result.Stats.Nodes += res.Graph.Nodes
		result.Stats.BuildTime += timings[i][0]
		result.Stats.RenderTime += timings[i][1]
		if res.Cached {
			result.CacheInfo.Hits++
		} else {
			result.CacheInfo.Misses++
		}
	}
	result.Roots = results
	result.Output = strings.Join(outputs, "\n")
	result.Stats.Roots = len(results)
	result.Stats.TotalTime = time.Since(start)

	logger.Info("generated typings",
		"roots", result.Stats.Roots,
		"samples", result.Stats.Samples,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.TotalTime.Round(time.Millisecond))

	return result, nil
}

// runRoot produces one root, from cache when possible. The returned
// durations are the build and render times; both are zero on a cache hit.
func (r *Runner) runRoot(ctx context.Context, logger *log.Logger, rt root, opts *Options) (RootResult, [2]time.Duration, error) {
	res := RootResult{Name: rt.name}
	if opts.PerFile {
		res.Source = rt.input.Path
	}

	key := r.Keyer.TypingsKey(InputHash(rt.input), opts.TypingsKeyOpts(rt.name))

	if !opts.Refresh {
		var cached cachedRoot
		if err := cache.GetJSON(ctx, r.Cache, key, &cached); err == nil {
			observability.Cache().OnCacheHit(ctx, "typings")
			res.Output, res.Samples, res.Graph, res.Cached = cached.Output, cached.Samples, cached.Graph, true
			return res, [2]time.Duration{}, nil
		}
		observability.Cache().OnCacheMiss(ctx, "typings")
	}

	type computed struct {
		payload cachedRoot
		timing  [2]time.Duration
	}
	v, err, _ := r.flight.Do(key, func() (any, error) {
		samplesList, err := rt.input.Samples(opts.Query)
		if err != nil {
			return nil, err
		}

		buildStart := time.Now()
		g, err := r.build(ctx, rt.name, samplesList, opts.Config)
		if err != nil {
			return nil, err
		}
		buildTime := time.Since(buildStart)

		renderStart := time.Now()
		out, err := r.render(ctx, g, opts.Config)
		if err != nil {
			return nil, err
		}
		renderTime := time.Since(renderStart)

		c := computed{
			payload: cachedRoot{Output: out, Samples: len(samplesList), Graph: g.Stats()},
			timing:  [2]time.Duration{buildTime, renderTime},
		}
		if err := cache.SetJSON(ctx, r.Cache, key, c.payload, cache.TTLTypings); err != nil {
			logger.Warn("cache write failed", "root", rt.name, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "typings", len(out))
		}
		return c, nil
	})
	if err != nil {
		return res, [2]time.Duration{}, err
	}

	c := v.(computed)
	res.Output, res.Samples, res.Graph = c.payload.Output, c.payload.Samples, c.payload.Graph
	logger.Debug("built root",
		"root", rt.name,
		"samples", res.Samples,
		"nodes", res.Graph.Nodes,
		"objects", res.Graph.Objects,
		"build", c.timing[0],
		"render", c.timing[1])
	return res, c.timing, nil
}

func (r *Runner) build(ctx context.Context, name string, values []any, cfg render.Config) (*typing.Graph, error) {
	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, name, len(values))
	g, err := typing.Build(name, values, cfg.BuildOptions()...)
	nodes := 0
	if g != nil {
		nodes = g.NodeCount()
	}
	observability.Pipeline().OnBuildComplete(ctx, name, nodes, time.Since(start), err)
	return g, err
}

func (r *Runner) render(ctx context.Context, g *typing.Graph, cfg render.Config) (string, error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, string(cfg.Strategy))
	out, err := render.Render(g, cfg)
	observability.Pipeline().OnRenderComplete(ctx, string(cfg.Strategy), len(out), time.Since(start), err)
	return out, err
}

// Graph builds the typing graph of the whole input under opts.Name.
// PerFile is ignored.
func (r *Runner) Graph(ctx context.Context, opts Options) (*typing.Graph, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	values, err := opts.Input.Samples(opts.Query)
	if err != nil {
		return nil, err
	}
	return r.build(ctx, opts.Name, values, opts.Config)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// planRoots splits the input into roots. Per-file roots are named after
// their file; names that collide get a numeric suffix.
func planRoots(opts Options) []root {
	if !opts.PerFile {
		return []root{{name: opts.Name, input: opts.Input}}
	}

	parts := opts.Input.Split()
	roots := make([]root, len(parts))
	seen := make(map[string]int)
	for i, in := range parts {
		base := filepath.Base(in.Path)
		name := casing.Pascal(strings.TrimSuffix(base, filepath.Ext(base)))
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s%d", name, n)
		}
		roots[i] = root{name: name, input: in}
	}
	return roots
}

// InputHash hashes the raw documents of in. Document names are not part
// of the hash, so renaming a sample file keeps its cache entry.
func InputHash(in samples.Input) string {
	parts := make([][]byte, 0, 2*len(in.Documents)+1)
	if in.Dir {
		parts = append(parts, []byte("dir"))
	} else {
		parts = append(parts, []byte("file"))
	}
	for _, doc := range in.Documents {
		parts = append(parts, []byte(doc.Format), doc.Data)
	}
	return cache.HashParts(parts...)
}
