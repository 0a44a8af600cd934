// Package names canonicalizes free-text worker names.
//
// Two forms are produced: a grouping key used only for equality, and a
// display name that is stored on entries and shown to users. Both collapse
// runs of whitespace and apply Unicode NFC so that composed and decomposed
// accents ("João" typed either way) land on the same value.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Key returns the grouping key for a worker name. Names that differ only by
// case or surrounding/repeated whitespace share a key.
func Key(name string) string {
	return cases.Fold().String(collapse(name))
}

// Display returns the title-cased presentation form: each whitespace
// separated token gets an upper-case first letter and a lower-case remainder.
// Display is idempotent.
func Display(name string) string {
	tokens := strings.Fields(norm.NFC.String(name))
	if len(tokens) == 0 {
		return ""
	}

	lower := cases.Lower(language.Und)
	for i, tok := range tokens {
		tokens[i] = titleToken(lower.String(tok))
	}
	return strings.Join(tokens, " ")
}

// Valid reports whether the name has any content once trimmed.
func Valid(name string) bool {
	return strings.TrimSpace(name) != ""
}

// Contains reports whether needle occurs in name, ignoring case and
// whitespace differences. An empty needle matches everything.
func Contains(name, needle string) bool {
	k := Key(needle)
	if k == "" {
		return true
	}
	return strings.Contains(Key(name), k)
}

func collapse(name string) string {
	return strings.Join(strings.Fields(norm.NFC.String(name)), " ")
}

func titleToken(tok string) string {
	r, size := utf8.DecodeRuneInString(tok)
	if r == utf8.RuneError {
		return tok
	}
	return string(unicode.ToTitle(r)) + tok[size:]
}
