package utils

import "regexp"

// MinPasswordLength is the signup password policy.
const MinPasswordLength = 6

// IsPasswordValid enforces password policy (≥6 chars)
func IsPasswordValid(p string) bool {
	return len(p) >= MinPasswordLength
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsEmailValid does a basic shape check, not full RFC validation
func IsEmailValid(e string) bool {
	return emailRe.MatchString(e)
}
