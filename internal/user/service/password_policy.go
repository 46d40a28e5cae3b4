// Package service implements domain services for the user module.
package service

import "strings"

// specialChars is the fixed set of characters accepted as special.
const specialChars = "!@#$%^&*()-=_+{};:'|/?.<>,"

// Password length bounds, inclusive.
const (
	minPasswordLength = 8
	maxPasswordLength = 64
)

// StrongPassword reports whether the password satisfies the strength policy:
// length between 8 and 64, at least one digit, one lowercase letter, one
// uppercase letter and one special character. Pure and total over any input.
func StrongPassword(password string) bool {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return false
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
		if strings.ContainsRune(specialChars, r) {
			hasSpecial = true
		}
	}

	return hasDigit && hasLower && hasUpper && hasSpecial
}
