// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. For a cipher service the
// sensitive data is the passphrase and the message itself, plaintext or not; file
// paths and stack traces are scrubbed as well.
package redact

import (
	"fmt"
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedPassphrasePlaceholder = "[REDACTED_PASSPHRASE]"
	RedactedTextPlaceholder       = "[REDACTED_TEXT]"
)

// Precompiled regex patterns
var (
	// Passphrases and keys given as key=value or key: value
	passphraseRegex = regexp.MustCompile(
		`(?i)\b(passphrase|password|key)(['"]?\s*[=:]\s*['"]?)[^'"&\s,}]+`,
	)

	// Message bodies inside JSON documents
	jsonTextRegex = regexp.MustCompile(
		`(?i)"(text|plaintext|ciphertext|keystream)"\s*:\s*"(?:[^"\\]|\\.)*"`,
	)

	// File paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	// All patterns and their placeholders, applied in order
	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{jsonTextRegex, RedactedTextPlaceholder},
		{passphraseRegex, RedactedPassphrasePlaceholder},
		{stackTraceRegex, "[STACK_TRACE_REDACTED]"},
		{unixPathRegex, RedactedPathPlaceholder},
		{winPathRegex, RedactedPathPlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
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

// Passphrase replaces a passphrase with a placeholder that only reveals its
// length, which is enough to tell an empty (null) key from a real one.
func Passphrase(passphrase string) string {
	return fmt.Sprintf("%s(len=%d)", RedactedPassphrasePlaceholder, len(passphrase))
}

// Text replaces a message with a placeholder that only reveals its length.
func Text(text string) string {
	return fmt.Sprintf("%s(len=%d)", RedactedTextPlaceholder, len(text))
}
