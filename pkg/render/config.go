package render

import (
	"strings"

	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultStringDelimiter wraps string literal types.
	DefaultStringDelimiter = `"`

	// DefaultIndentation is prepended once per nesting level and before
	// every union continuation.
	DefaultIndentation = "    "

	// DefaultTypeScriptVersion is the target version tag. It is validated
	// but does not influence output yet.
	DefaultTypeScriptVersion = "latest"

	// DefaultStrategy is the rendering strategy.
	DefaultStrategy = StrategyTree

	// DefaultPartition is the value partition policy of the builder.
	DefaultPartition = typing.PartitionRuns
)

// StrategyKind names a rendering strategy.
type StrategyKind string

const (
	// StrategyTree nests every object's declarations inside the namespace
	// of the object that owns it.
	StrategyTree StrategyKind = "tree"
	// StrategyFamily groups declarations by structural family. Not implemented.
	StrategyFamily StrategyKind = "family"
)

// ParseStrategy parses a strategy name case-insensitively.
func ParseStrategy(s string) (StrategyKind, error) {
	switch k := StrategyKind(strings.ToLower(strings.TrimSpace(s))); k {
	case StrategyTree, StrategyFamily:
		return k, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig, "invalid strategy: %q (must be one of: tree, family)", s)
	}
}

// =============================================================================
// Config
// =============================================================================

// Config controls how a typing graph is turned into declarations.
// It is read-only for the duration of a render call.
type Config struct {
	// StringDelimiter wraps string literal types. Either " or '.
	StringDelimiter string `toml:"string_delimiter" json:"string_delimiter"`

	// Indentation is the unit prepended per nesting level and before each
	// "| " union continuation. Spaces and tabs only.
	Indentation string `toml:"indentation" json:"indentation"`

	// Sort orders interface fields required-first, then by key.
	Sort bool `toml:"sort" json:"sort"`

	// TypeScriptVersion is the target language version ("latest" or "5.3").
	TypeScriptVersion string `toml:"typescript_version" json:"typescript_version"`

	// Strategy selects the rendering strategy.
	Strategy StrategyKind `toml:"strategy" json:"strategy"`

	// Partition selects how values at one position are grouped by kind
	// while the graph is built.
	Partition typing.Partition `toml:"partition" json:"partition"`

	// WrapArrays renders single-member and empty arrays as Array<T> too.
	// When false they render as the bare member type.
	WrapArrays bool `toml:"wrap_arrays" json:"wrap_arrays"`
}

// DefaultConfig returns the default rendering configuration.
func DefaultConfig() Config {
	return Config{
		StringDelimiter:   DefaultStringDelimiter,
		Indentation:       DefaultIndentation,
		TypeScriptVersion: DefaultTypeScriptVersion,
		Strategy:          DefaultStrategy,
		Partition:         DefaultPartition,
	}
}

// SetDefaults fills empty fields with their defaults.
func (c *Config) SetDefaults() {
	if c.StringDelimiter == "" {
		c.StringDelimiter = DefaultStringDelimiter
	}
	if c.Indentation == "" {
		c.Indentation = DefaultIndentation
	}
	if c.TypeScriptVersion == "" {
		c.TypeScriptVersion = DefaultTypeScriptVersion
	}
	if c.Strategy == "" {
		c.Strategy = DefaultStrategy
	}
	if c.Partition == "" {
		c.Partition = DefaultPartition
	}
}

// Validate checks every field and returns an [errors.ErrCodeInvalidConfig]
// error for the first invalid one. Empty fields are not defaulted here;
// call SetDefaults first if needed.
func (c Config) Validate() error {
	if err := errors.ValidateDelimiter(c.StringDelimiter); err != nil {
		return err
	}
	if err := errors.ValidateIndentation(c.Indentation); err != nil {
		return err
	}
	if err := errors.ValidateTypeScriptVersion(c.TypeScriptVersion); err != nil {
		return err
	}
	switch c.Strategy {
	case StrategyTree, StrategyFamily:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid strategy: %q (must be one of: tree, family)", c.Strategy)
	}
	switch c.Partition {
	case typing.PartitionRuns, typing.PartitionKind:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "invalid partition: %q (must be one of: runs, kind)", c.Partition)
	}
	return nil
}

// BuildOptions returns the builder options implied by the config.
func (c Config) BuildOptions() []typing.Option {
	return []typing.Option{typing.WithPartition(c.Partition)}
}
