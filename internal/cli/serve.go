package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsontypings/internal/server"
	"github.com/matzehuels/jsontypings/pkg/cache"
	"github.com/matzehuels/jsontypings/pkg/config"
	"github.com/matzehuels/jsontypings/pkg/pipeline"
)

// serveKeyPrefix scopes server cache entries, so a redis instance can be
// shared with CLI users without mixing entries.
const serveKeyPrefix = "serve:"

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the typings API over HTTP",
		Long: `Serve the typings API over HTTP.

Endpoints:
  POST /v1/typings   infer declarations from samples or documents
  POST /v1/graph     dump the typing graph as DOT or SVG
  GET  /healthz      liveness and build information

The server caches results in memory unless cache.backend selects redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				s.Server.Addr = addr
			}
			if err := s.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			backend := s.Cache.Backend
			if backend == "" {
				backend = config.CacheMemory
			}
			ch, err := newCache(ctx, s.Cache, backend)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(ch, cache.NewScopedKeyer(cache.NewDefaultKeyer(), serveKeyPrefix), c.Logger)
			defer runner.Close()

			printInfo("Serving on %s (cache: %s)", s.Server.Addr, backend)
			return server.New(runner, s, c.Logger).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", config.DefaultServerAddr, "listen address")
	return cmd
}
