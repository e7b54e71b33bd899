// Package cli implements the jsontypings command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsontypings/pkg/buildinfo"
	"github.com/matzehuels/jsontypings/pkg/cache"
	"github.com/matzehuels/jsontypings/pkg/config"
	"github.com/matzehuels/jsontypings/pkg/observability"
	"github.com/matzehuels/jsontypings/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "jsontypings"

	// defaultOutput is the declaration file written by generate.
	defaultOutput = "index.d.ts"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	logOut     io.Writer
	logCloser  io.Closer
	configPath string
	logFile    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		logOut: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Close flushes and closes the log file, if one was opened.
func (c *CLI) Close() error {
	if c.logCloser != nil {
		return c.logCloser.Close()
	}
	return nil
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "jsontypings infers TypeScript declarations from JSON samples",
		Long:         `jsontypings reads a set of JSON or YAML sample documents and writes TypeScript interfaces, namespaces and union aliases that describe all of them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetPipelineHooks(logHooks{c.Logger})
			observability.SetCacheHooks(logHooks{c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (default ./"+config.DefaultFileName+" if present)")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "also write logs to this file (rotated)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// loadSettings loads file and environment settings and attaches the log
// file. Command flags are applied by the caller.
func (c *CLI) loadSettings() (config.Settings, error) {
	s, err := config.Load(c.configPath)
	if err != nil {
		return config.Settings{}, err
	}
	if c.logFile != "" {
		s.Log.File = c.logFile
	}
	if err := c.attachLogFile(s.Log); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, s config.CacheSettings, noCache bool) (*pipeline.Runner, error) {
	backend := s.Backend
	if backend == "" {
		backend = config.CacheFile
	}
	if noCache {
		backend = config.CacheNone
	}
	ch, err := newCache(ctx, s, backend)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

// newCache opens the cache backend. An unusable cache directory degrades
// to no caching rather than failing the command.
func newCache(ctx context.Context, s config.CacheSettings, backend string) (cache.Cache, error) {
	switch backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheMemory:
		return cache.NewMemoryCache(s.MemoryEntries)
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     s.RedisAddr,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		})
	default:
		dir, err := cacheDir(s)
		if err != nil {
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return fc, nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the user cache
// directory (~/.cache/jsontypings on Linux).
func cacheDir(s config.CacheSettings) (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	return cache.DefaultDir()
}
