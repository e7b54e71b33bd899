package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsontypings/pkg/config"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// renderFlags are the settings overrides shared by generate and graph.
// A flag only overrides the file and environment settings when it was
// given on the command line.
type renderFlags struct {
	name        string
	query       string
	delimiter   string
	indentation string
	tsVersion   string
	partition   string
	sort        bool
	wrapArrays  bool
	tree        bool
	family      bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", config.DefaultName, "root interface name")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "jq expression selecting the samples in each document")
	cmd.Flags().StringVar(&f.partition, "partition", string(typing.PartitionRuns), "value grouping: runs, kind")
}

func (f *renderFlags) registerOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.delimiter, "delimiter", "d", `"`, `string literal delimiter: " or '`)
	cmd.Flags().StringVarP(&f.indentation, "indentation", "i", "    ", "indentation unit (spaces or tabs)")
	cmd.Flags().StringVarP(&f.tsVersion, "typescript-version", "t", "latest", "target TypeScript version")
	cmd.Flags().BoolVar(&f.sort, "sort", false, "sort interface fields by key, optional fields last")
	cmd.Flags().BoolVar(&f.wrapArrays, "wrap-arrays", false, "render single-type arrays as Array<T>")
	cmd.Flags().BoolVar(&f.tree, "tree", false, "use the tree strategy (default)")
	cmd.Flags().BoolVar(&f.family, "family", false, "use the family strategy")
}

// apply writes the changed flags over s and validates the result.
func (f *renderFlags) apply(cmd *cobra.Command, s *config.Settings) error {
	flags := cmd.Flags()
	changed := func(name string) bool {
		fl := flags.Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("name") {
		s.Name = f.name
	}
	if changed("partition") {
		s.Partition = typing.Partition(f.partition)
	}
	if changed("delimiter") {
		s.StringDelimiter = f.delimiter
	}
	if changed("indentation") {
		s.Indentation = f.indentation
	}
	if changed("typescript-version") {
		s.TypeScriptVersion = f.tsVersion
	}
	if changed("sort") {
		s.Sort = f.sort
	}
	if changed("wrap-arrays") {
		s.WrapArrays = f.wrapArrays
	}

	strategy, err := config.StrategyFlags(f.tree, f.family)
	if err != nil {
		return err
	}
	if strategy != "" {
		s.Strategy = strategy
	}
	return s.Validate()
}
