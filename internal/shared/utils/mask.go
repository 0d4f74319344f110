package utils

import "strings"

// MaskEmail masks an email address for safe logging and audit snapshots.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 1 {
		return local + "***@" + parts[1]
	}
	return string(local[0]) + "***@" + parts[1]
}

// MaskString masks all but the first and last character of a string.
// Short strings are fully masked.
func MaskString(s string) string {
	if len(s) <= 2 {
		return "***"
	}
	return string(s[0]) + "***" + string(s[len(s)-1])
}
