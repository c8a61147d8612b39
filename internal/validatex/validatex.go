// Package validatex holds the credential validation rules used before any
// remote call is attempted.
package validatex

import (
	"regexp"
	"unicode/utf8"
)

// Deliberately loose: a single-@ structural check, not RFC 5322.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like an e-mail address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// MinPasswordLen is the only password composition rule.
const MinPasswordLen = 6

// Password reports whether s satisfies the minimum length rule.
func Password(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLen
}
