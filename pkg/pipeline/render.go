package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/jsontypings/pkg/cache"
	"github.com/matzehuels/jsontypings/pkg/observability"
	"github.com/matzehuels/jsontypings/pkg/render/nodelink"
)

// RenderGraph dumps the typing graph of opts as DOT or SVG. The boolean
// reports whether the artifact came from the cache.
func (r *Runner) RenderGraph(ctx context.Context, opts Options, gopts GraphOptions) ([]byte, bool, error) {
	if gopts.Format == "" {
		gopts.Format = FormatDOT
	}
	if err := ValidateGraphFormat(gopts.Format); err != nil {
		return nil, false, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}

	key := r.Keyer.GraphKey(InputHash(opts.Input), cache.GraphKeyOpts{
		Name:      opts.Name,
		Query:     opts.Query,
		Partition: string(opts.Config.Partition),
		Format:    gopts.Format,
		Detailed:  gopts.Detailed,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "graph")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	g, err := r.Graph(ctx, opts)
	if err != nil {
		return nil, false, err
	}

	data := []byte(nodelink.ToDOT(g, nodelink.Options{Detailed: gopts.Detailed}))
	if gopts.Format == FormatSVG {
		if data, err = nodelink.RenderSVG(ctx, string(data)); err != nil {
			return nil, false, fmt.Errorf("render svg: %w", err)
		}
	}

	if err := r.Cache.Set(ctx, key, data, cache.TTLGraph); err == nil {
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}
	r.Logger.Debug("rendered typing graph", "format", gopts.Format, "nodes", g.NodeCount(), "bytes", len(data))
	return data, false, nil
}
