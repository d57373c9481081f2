// Package redact scrubs sensitive information from strings before they are
// logged, so credentials, tokens, and connection strings never leak into
// log output.
package redact

import "regexp"

// Placeholder substituted for redacted content.
const Placeholder = "[REDACTED]"

var (
	// Database connection strings with inline credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// Password key/value fragments.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// JWT tokens: three base64url segments, the first two starting with the
	// standard {"... header/payload prefix.
	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)
)

// String returns s with credentials, tokens, and connection-string secrets
// replaced by placeholders.
func String(s string) string {
	s = dbConnRegex.ReplaceAllString(s, "$1://"+Placeholder+"@")
	s = passwordRegex.ReplaceAllString(s, "$1$2"+Placeholder)
	s = jwtTokenRegex.ReplaceAllString(s, Placeholder)
	return s
}

// Error returns the redacted message of err, or an empty string for nil.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
