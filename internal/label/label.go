// Package label derives human-readable labels from field keys.
package label

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Make converts a field key into a label. It splits on underscores, dashes,
// whitespace, camelCase boundaries and letter/digit transitions, upper-cases
// the first character of every token and joins the tokens with a single
// space. The remainder of each token is left untouched so acronyms survive.
//
//	firstName -> First Name
//	last_name -> Last Name
func Make(key string) string {
	if key == "" {
		return ""
	}

	var tokens []string
	for _, word := range splitWordsPattern.Split(key, -1) {
		if word == "" {
			continue
		}
		for _, token := range splitCamel(word) {
			tokens = append(tokens, capitalize(token))
		}
	}
	return strings.Join(tokens, " ")
}

func splitCamel(input string) []string {
	var (
		out   []string
		start int
		prev  rune
	)
	for i, r := range input {
		if i > 0 && isBoundary(prev, r) {
			out = append(out, input[start:i])
			start = i
		}
		prev = r
	}
	return append(out, input[start:])
}

func isBoundary(prev, r rune) bool {
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
