// Package names normalizes scientific names into keys of the reference
// index.
package names

import (
	"strings"
)

// Normalize returns the first two whitespace-separated tokens of a name
// joined by one space. Case is preserved. A name with fewer than two tokens
// is returned trimmed, an empty or blank name returns an empty string.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}
