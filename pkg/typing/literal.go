package typing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// LiteralKind distinguishes the three literal variants.
type LiteralKind int

const (
	// LiteralString is a quoted string such as "active".
	LiteralString LiteralKind = iota
	// LiteralNumber is a numeric literal such as 42. It is never produced by
	// the builder and exists for numeric narrowing.
	LiteralNumber
	// LiteralTemplate is a template pattern such as `id_${number}`.
	LiteralTemplate
)

// Literal is a single literal type value.
//
// Two literals are equal when they have the same kind and the same content.
// For numbers, content means the numeric value, so 1 and 1.0 are equal.
// Integers keep their exact int64 value. Use [Literal.Key] as a map key
// where equality matters.
type Literal struct {
	Kind LiteralKind
	Text string // content for string and template literals

	num     float64
	i64     int64
	integer bool
}

// StringLiteral returns a quoted string literal.
func StringLiteral(s string) Literal { return Literal{Kind: LiteralString, Text: s} }

// TemplateLiteral returns a template pattern literal.
func TemplateLiteral(s string) Literal { return Literal{Kind: LiteralTemplate, Text: s} }

// IntLiteral returns a numeric literal from an integer.
func IntLiteral(n int64) Literal {
	return Literal{Kind: LiteralNumber, i64: n, integer: true}
}

// FloatLiteral returns a numeric literal from a float.
func FloatLiteral(f float64) Literal {
	return Literal{Kind: LiteralNumber, num: f}
}

// Float returns the numeric value of a number literal and 0 otherwise.
// Integers beyond 2^53 lose precision.
func (l Literal) Float() float64 {
	if l.integer {
		return float64(l.i64)
	}
	return l.num
}

// Key returns a comparable identity for the literal. It ignores whether a
// number was built from an integer or a float, and it maps -0 to 0.
// Integral floats inside the int64 range share the key of the integer.
func (l Literal) Key() string {
	switch l.Kind {
	case LiteralNumber:
		if l.integer {
			return "n:" + strconv.FormatInt(l.i64, 10)
		}
		if i, ok := exactInt(l.num); ok {
			return "n:" + strconv.FormatInt(i, 10)
		}
		return "n:" + strconv.FormatFloat(l.num, 'g', -1, 64)
	case LiteralTemplate:
		return "t:" + l.Text
	default:
		return "s:" + l.Text
	}
}

// Equal reports whether l and other are the same literal.
func (l Literal) Equal(other Literal) bool { return l.Key() == other.Key() }

// Format renders the literal as TypeScript. String literals are wrapped in
// delim; occurrences of delim and backslashes are escaped. Templates are
// wrapped in backticks.
func (l Literal) Format(delim string) string {
	switch l.Kind {
	case LiteralNumber:
		if l.integer {
			return strconv.FormatInt(l.i64, 10)
		}
		return formatFloat(l.num)
	case LiteralTemplate:
		return "`" + l.Text + "`"
	default:
		return delim + escapeString(l.Text, delim) + delim
	}
}

// String renders the literal with the default double-quote delimiter.
func (l Literal) String() string { return l.Format(`"`) }

func formatFloat(n float64) string {
	if n == 0 && math.Signbit(n) {
		return "-0"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// exactInt returns f as an int64 when f is integral and in range.
func exactInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// escapeString escapes backslashes, the delimiter and control characters.
func escapeString(s, delim string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case delim != "" && strings.ContainsRune(delim, r):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
