// Package casing converts JSON field keys into TypeScript type names.
//
// Keys are split into words at every non-alphanumeric character, at
// lower-to-upper transitions ("userId" → user, Id), at the end of an
// acronym ("HTTPServer" → HTTP, Server) and between letters and digits
// ("item2" → item, 2). Each word is then title-cased using the Unicode
// rules from golang.org/x/text/cases and the words are concatenated.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fallback is returned by [Pascal] for keys that contain no letters or digits.
const Fallback = "Unnamed"

// Pascal converts s to PascalCase and guarantees a usable type identifier.
// Results that would begin with a digit are prefixed with an underscore.
//
//	Pascal("user_name")   == "UserName"
//	Pascal("HTTPServer")  == "HttpServer"
//	Pascal("line-items")  == "LineItems"
//	Pascal("2fa")         == "_2Fa"
func Pascal(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return Fallback
	}

	title := cases.Title(language.Und)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(title.String(w))
	}

	out := b.String()
	if r := []rune(out)[0]; unicode.IsDigit(r) {
		out = "_" + out
	}
	return out
}

// Words splits s into its case words. Non-alphanumeric runes are dropped.
func Words(s string) []string {
	runes := []rune(s)
	var (
		words []string
		start = -1
	)

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !isWordRune(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if boundary(runes, i) {
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundary reports whether a new word starts at runes[i]. runes[i-1] is
// known to be part of the current word.
func boundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur):
		// "HTTPServer": the S starts a new word because the next rune is lower.
		return i+1 < len(runes) && unicode.IsLower(runes[i+1])
	}
	return false
}
