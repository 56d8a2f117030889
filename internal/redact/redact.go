// Package redact removes sensitive information from strings before they are
// logged or returned in error responses. Provider errors routinely echo the
// request URL, and with it the API key, so every error that reaches a log
// line goes through Error.
package redact

import (
	"regexp"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Precompiled rules, applied in order. Query parameters run before the
// generic key rule so the parameter name is kept.
var (
	rules = []rule{
		// Google API keys, wherever they appear
		{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
		// key= and access_token= query parameters
		{regexp.MustCompile(`(?i)([?&](?:key|api_key|access_token)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
		// x-goog-api-key headers and other key-value credentials
		{
			regexp.MustCompile(`(?i)(x-goog-api-key|api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
			"${1}${2}" + RedactedKeyPlaceholder,
		},
		{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/]{8,}=*`), "${1}" + RedactedCredentialPlaceholder},
		{regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`), RedactedCredentialPlaceholder},
		{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
		// Filesystem paths such as template override directories
		{regexp.MustCompile(`(^|[\s:("'])(/[\w.-]+){2,}`), "${1}" + RedactedPathPlaceholder},
		{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	}

	mu sync.RWMutex
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Secret masks a configured secret for display, keeping only enough of it
// to tell two keys apart.
func Secret(s string) string {
	if len(s) <= 8 {
		if s == "" {
			return ""
		}
		return RedactionPlaceholder
	}
	return s[:4] + "..." + s[len(s)-2:]
}
