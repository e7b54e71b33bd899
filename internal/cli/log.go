package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matzehuels/jsontypings/pkg/config"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// attachLogFile tees the CLI logger into a rotating log file. It is a
// no-op without a file name or when a file is already attached.
func (c *CLI) attachLogFile(s config.LogSettings) error {
	if s.File == "" || c.logCloser != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.File), 0o755); err != nil {
		return err
	}
	lj := &lumberjack.Logger{
		Filename:   s.File,
		MaxSize:    s.MaxSizeMB,
		MaxBackups: s.MaxBackups,
		MaxAge:     s.MaxAgeDays,
		Compress:   s.Compress,
		LocalTime:  true,
	}
	c.Logger.SetOutput(io.MultiWriter(c.logOut, lj))
	c.logCloser = lj
	return nil
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Generated 3 roots (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnBuildStart(_ context.Context, name string, samples int) {
	h.logger.Debug("build start", "root", name, "samples", samples)
}

func (h logHooks) OnBuildComplete(_ context.Context, name string, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "root", name, "err", err)
		return
	}
	h.logger.Debug("build done", "root", name, "nodes", nodeCount, "took", d)
}

func (h logHooks) OnRenderStart(_ context.Context, strategy string) {
	h.logger.Debug("render start", "strategy", strategy)
}

func (h logHooks) OnRenderComplete(_ context.Context, strategy string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "strategy", strategy, "err", err)
		return
	}
	h.logger.Debug("render done", "strategy", strategy, "bytes", size, "took", d)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
