package handlers

import (
	"net/mail"
	"strings"
)

const minPasswordLen = 8

// Field checks run in a fixed priority order and the first failing check's
// message is what the visitor sees. Uniqueness/conflict checks come after,
// so a malformed request never reaches the store.

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// validateSignup returns the first validation error message, or "".
func validateSignup(email, password, passwordRepeat string) string {
	if !validEmail(email) {
		return "Invalid email"
	}
	if len(password) < minPasswordLen {
		return "Password must be minimum 8 characters"
	}
	if passwordRepeat != password {
		return "Passwords do not match"
	}
	return ""
}

// validateLogin returns the first validation error message, or "".
func validateLogin(email, password string) string {
	if !validEmail(email) {
		return "Invalid email"
	}
	if len(password) < minPasswordLen {
		return "Password is minimum 8 characters"
	}
	return ""
}

// validateProfile returns the first validation error message, or "".
// Phone format is checked by an external service before it gets here; the
// backend stores it as given.
func validateProfile(email string) string {
	if !validEmail(email) {
		return "Invalid email"
	}
	return ""
}
