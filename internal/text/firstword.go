// Package text holds small string helpers.
package text

import "strings"

// FirstWord returns the part of s before its first space character (U+0020).
// It returns s unchanged when there is no space, and the empty string when s
// is empty or starts with a space. Other whitespace such as tabs or newlines
// is not a delimiter.
func FirstWord(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}
