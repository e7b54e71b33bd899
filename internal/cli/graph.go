package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jsontypings/pkg/pipeline"
	"github.com/matzehuels/jsontypings/pkg/samples"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	renderFlags
	output   string // output file, stdout when empty
	format   string // dot or svg
	detailed bool   // node IDs and owner edges
	noCache  bool
}

// graphCommand creates the graph command, which dumps the inferred typing
// graph for debugging.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [path]",
		Short: "Dump the inferred typing graph as DOT or SVG",
		Example: `  jsontypings graph responses.json | dot -Tpng > graph.png
  jsontypings graph fixtures/ -f svg -o graph.svg --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateGraphFormat(opts.format); err != nil {
				return err
			}
			s, err := c.loadSettings()
			if err != nil {
				return err
			}
			if err := opts.apply(cmd, &s); err != nil {
				return err
			}

			ctx := cmd.Context()
			in, err := samples.ReadPath(args[0])
			if err != nil {
				return err
			}

			runner, err := c.newRunner(ctx, s.Cache, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			data, cached, err := runner.RenderGraph(ctx, pipeline.Options{
				Name:   s.Name,
				Input:  in,
				Query:  opts.query,
				Config: s.Config,
			}, pipeline.GraphOptions{Format: opts.format, Detailed: opts.detailed})
			if err != nil {
				return err
			}

			if opts.output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			printSuccess("Typing graph written")
			printFile(opts.output)
			printStats(1, 0, cached)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatDOT, "output format: dot, svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node IDs and owner edges")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}
