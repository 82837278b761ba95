package normalize

import (
	"regexp"
	"strings"
)

// Lightweight shape check for common email formats. Not RFC 5322.
var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email lowercases and trims an address.
func Email(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ValidEmail reports whether the string matches local@domain.tld with no
// whitespace and exactly one "@".
func ValidEmail(email string) bool {
	return reEmail.MatchString(email)
}
