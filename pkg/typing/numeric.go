package typing

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Placeholders substituted for numeric tokens in template literals.
const (
	NumberPlaceholder = "${number}"
	BigintPlaceholder = "${bigint}"
)

// Span is a half-open byte range [Start, End) within a string.
type Span struct {
	Start, End int
}

// numberPattern matches one numeric token:
//
//	0b[01]+   0o[1-7]+   0x[0-9a-f]+   \d+(\.\d+)?n?
//
// Prefixes and hex digits are case-insensitive. The bigint suffix "n" is
// lower case and only follows a decimal. A radix body stops where the same
// radix prefix starts again, so "0x10x1" holds two tokens.
var numberPattern = regexp2.MustCompile(numberExpr(), regexp2.None)

func numberExpr() string {
	radixes := []struct {
		prefix byte
		digit  string
	}{
		{'b', `[0-1]`},
		{'o', `[1-7]`},
		{'x', `[\da-f]`},
	}
	alts := make([]string, 0, len(radixes)+1)
	for _, r := range radixes {
		alts = append(alts, fmt.Sprintf(`(?:0%c((?!0%c)%s)+)`, r.prefix, r.prefix, r.digit))
	}
	alts = append(alts, `(?:\d+(\.\d+)?)`)
	return `(?i)` + strings.Join(alts, "|") + `(?-i)n?`
}

// NumericTokens returns the non-overlapping numeric tokens of s from left to
// right. When a radix prefix has no valid digit after it, the leading "0" is
// matched as a decimal instead.
func NumericTokens(s string) []Span {
	var spans []Span
	offsets := runeOffsets(s)
	m, err := numberPattern.FindStringMatch(s)
	for err == nil && m != nil {
		spans = append(spans, Span{
			Start: offsets[m.Index],
			End:   offsets[m.Index+m.Length],
		})
		m, err = numberPattern.FindNextMatch(m)
	}
	return spans
}

// ContainsNumeric reports whether s contains at least one numeric token.
func ContainsNumeric(s string) bool {
	ok, err := numberPattern.MatchString(s)
	return err == nil && ok
}

// Templatize replaces every numeric token in s with [NumberPlaceholder], or
// [BigintPlaceholder] when the token carries the bigint suffix.
func Templatize(s string) string {
	spans := NumericTokens(s)
	if len(spans) == 0 {
		return s
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(s[last:sp.Start])
		if s[sp.End-1] == 'n' {
			b.WriteString(BigintPlaceholder)
		} else {
			b.WriteString(NumberPlaceholder)
		}
		last = sp.End
	}
	b.WriteString(s[last:])
	return b.String()
}

// runeOffsets maps rune indexes, as reported by regexp2, to byte offsets in
// s. The extra trailing entry is len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
