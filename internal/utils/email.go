package utils

import "strings"

// NormalizeEmail lower-cases the domain part of an email address and keeps
// the local part untouched, e.g. "Test2@Example.com" -> "Test2@example.com".
// Values without an "@" are returned unchanged.
func NormalizeEmail(email string) string {
	trimmed := strings.TrimSpace(email)

	at := strings.LastIndex(trimmed, "@")
	if at < 0 {
		return email
	}

	return trimmed[:at] + "@" + strings.ToLower(trimmed[at+1:])
}
