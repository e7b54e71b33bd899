package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsontypings/pkg/pipeline"
	"github.com/matzehuels/jsontypings/pkg/samples"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	renderFlags
	output  string // declaration file, extension forced to .ts
	stdout  bool   // print instead of writing a file
	perFile bool   // one root per input file
	noCache bool   // disable the result cache
	refresh bool   // recompute and overwrite cached results
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:     "generate [path]",
		Aliases: []string{"gen"},
		Short:   "Generate TypeScript declarations from sample files",
		Long: `Generate TypeScript declarations from a JSON or YAML sample file or a
directory of sample files.

A file holding a top-level array contributes every element as one sample.
In a directory every *.json, *.yaml and *.yml file is one sample.`,
		Example: `  jsontypings generate responses.json
  jsontypings generate fixtures/ --name Payload -o types/payload.d.ts
  jsontypings generate page.json --query '.data.items[]' --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &s); err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, s.Cache, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			return c.runGenerate(ctx, cmd.OutOrStdout(), runner, args[0], pipeline.Options{
				Name:    s.Name,
				Query:   opts.query,
				PerFile: opts.perFile,
				Config:  s.Config,
				Refresh: opts.refresh,
			}, opts)
		},
	}

	opts.register(cmd)
	opts.registerOutput(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultOutput, "output file (extension forced to .ts)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print declarations instead of writing a file")
	cmd.Flags().BoolVar(&opts.perFile, "per-file", false, "generate one root interface per input file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, stdout io.Writer, runner *pipeline.Runner, path string, popts pipeline.Options, opts generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := samples.ReadPath(path)
	if err != nil {
		return err
	}
	popts.Input = in
	logger.Debug("read samples", "path", path, "documents", len(in.Documents), "bytes", in.Bytes())

	var spinner *Spinner
	if !opts.stdout && logger.GetLevel() > log.DebugLevel {
		spinner = newSpinnerWithContext(ctx, "Inferring types...")
		spinner.Start()
	}
	result, err := runner.Execute(ctx, popts)
	if spinner != nil {
		if err != nil && !spinner.Cancelled() {
			spinner.StopWithError("Inference failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}
	if result.Stats.Samples == 0 {
		logger.Warn("no samples found", "path", path)
	}

	if opts.stdout {
		_, err := io.WriteString(stdout, withTrailingNewline(result.Output))
		return err
	}

	out, err := writeDeclarations(opts.output, result.Output)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d root(s) from %d sample(s)", result.Stats.Roots, result.Stats.Samples))

	printSuccess("Declarations written")
	printFile(out)
	printStats(result.Stats.Roots, result.Stats.Nodes, result.CacheInfo.Hits == result.Stats.Roots)
	return nil
}

// writeDeclarations writes text to path with its extension replaced by
// .ts, creating parent directories. It returns the path written.
func writeDeclarations(path, text string) (string, error) {
	if path == "" {
		path = defaultOutput
	}
	path = strings.TrimSuffix(path, filepath.Ext(path)) + ".ts"

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(withTrailingNewline(text)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func withTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
