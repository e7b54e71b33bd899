package render

import (
	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// Strategy turns a typing graph into declaration text.
type Strategy interface {
	Render(g *typing.Graph, cfg Config) (string, error)
}

// StrategyFor returns the strategy registered under kind.
func StrategyFor(kind StrategyKind) (Strategy, error) {
	switch kind {
	case StrategyTree:
		return Tree{}, nil
	case StrategyFamily:
		return Family{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid strategy: %q (must be one of: tree, family)", kind)
	}
}

// Render validates cfg and renders g with the strategy cfg selects. Empty
// config fields take their defaults.
func Render(g *typing.Graph, cfg Config) (string, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	s, err := StrategyFor(cfg.Strategy)
	if err != nil {
		return "", err
	}
	return s.Render(g, cfg)
}

// Family groups declarations by structural family. It is reserved and
// always fails with [errors.ErrCodeNotImplemented].
type Family struct{}

// Render implements Strategy.
func (Family) Render(*typing.Graph, Config) (string, error) {
	return "", errors.New(errors.ErrCodeNotImplemented, "the %q strategy is not implemented", StrategyFamily)
}
