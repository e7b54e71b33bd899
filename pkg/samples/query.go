package samples

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/itchyny/gojq"

	"github.com/matzehuels/jsontypings/pkg/errors"
	"github.com/matzehuels/jsontypings/pkg/typing"
)

// Selector is a compiled jq expression.
type Selector struct {
	query string
	code  *gojq.Code
}

// NewSelector parses and compiles a jq expression. Syntax errors are
// reported as [errors.ErrCodeInvalidInput].
func NewSelector(query string) (*Selector, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid jq expression %q", query)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "compile jq expression %q", query)
	}
	return &Selector{query: query, code: code}, nil
}

// Run applies the expression to every value and returns all outputs in
// order. label names the source in error messages.
func (s *Selector) Run(label string, values []any) ([]any, error) {
	var out []any
	for _, v := range values {
		iter := s.code.Run(toJQ(v))
		for {
			res, ok := iter.Next()
			if !ok {
				break
			}
			if err, isErr := res.(error); isErr {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: query %q", label, s.query)
			}
			out = append(out, res)
		}
	}
	return out, nil
}

// Select is a convenience wrapper that compiles query and runs it once.
func Select(values []any, query string) ([]any, error) {
	sel, err := NewSelector(query)
	if err != nil {
		return nil, err
	}
	return sel.Run("input", values)
}

// toJQ converts decoded sample values into the value types gojq accepts.
func toJQ(v any) any {
	switch t := v.(type) {
	case *typing.Map:
		m := make(map[string]any, t.Len())
		for k, vv := range t.All() {
			m[k] = toJQ(vv)
		}
		return m
	case []any:
		arr := make([]any, len(t))
		for i, vv := range t {
			arr[i] = toJQ(vv)
		}
		return arr
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil && i >= math.MinInt && i <= math.MaxInt {
			return int(i)
		}
		f, _ := strconv.ParseFloat(string(t), 64)
		return f
	case int64:
		return int(t)
	default:
		return v
	}
}
