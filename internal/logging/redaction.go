package logging

import (
	"net/url"
	"regexp"
	"strings"
)

// Redaction patterns for sensitive data in logs.
var (
	// PasswordPattern matches passwords in key=value or key: value form.
	PasswordPattern = regexp.MustCompile(`(?i)(password[=:]\s*)([^\s"',}&]+)`)

	// BasicAuthPattern matches a basic Authorization header value.
	BasicAuthPattern = regexp.MustCompile(`(?i)(Basic\s+)([A-Za-z0-9+/=]{4,})`)

	// UserInfoPattern matches user:password@ credentials embedded in URLs.
	UserInfoPattern = regexp.MustCompile(`://[^:/@\s]+:[^@/\s]+@`)
)

const redacted = "***REDACTED***"

// RedactString applies redaction patterns to a string, masking sensitive data.
func RedactString(s string) string {
	if s == "" {
		return s
	}

	result := PasswordPattern.ReplaceAllString(s, `${1}`+redacted)
	result = BasicAuthPattern.ReplaceAllString(result, `${1}`+redacted)
	result = UserInfoPattern.ReplaceAllString(result, `://`+redacted+`@`)

	return result
}

// RedactURL removes any credentials from u before it is logged.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	if u.User == nil {
		return u.String()
	}
	clean := *u
	clean.User = url.User(u.User.Username())
	return RedactString(clean.String())
}

// RedactFields redacts sensitive values in a map of fields.
func RedactFields(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return fields
	}

	out := make(map[string]interface{}, len(fields))
	sensitiveKeys := []string{"password", "secret", "token", "credential", "auth"}

	for k, v := range fields {
		keyLower := strings.ToLower(k)
		isSensitive := false

		for _, sensitive := range sensitiveKeys {
			if strings.Contains(keyLower, sensitive) {
				isSensitive = true
				break
			}
		}

		if isSensitive {
			out[k] = redacted
		} else {
			out[k] = v
		}
	}

	return out
}
