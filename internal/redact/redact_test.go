package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/solitaire/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "This is a normal log message",
			expected: "This is a normal log message",
		},
		{
			name:     "passphrase parameter",
			input:    "encrypt failed for passphrase=cryptonomicon",
			expected: "encrypt failed for [REDACTED_PASSPHRASE]",
		},
		{
			name:     "key with colon",
			input:    "bad key: foo supplied",
			expected: "bad [REDACTED_PASSPHRASE] supplied",
		},
		{
			name:     "key inside a longer word",
			input:    "monkey=banana",
			expected: "monkey=banana",
		},
		{
			name:     "JSON request body",
			input:    `request body {"passphrase":"secret","text":"ATTACK AT DAWN"}`,
			expected: `request body {"[REDACTED_PASSPHRASE]",[REDACTED_TEXT]}`,
		},
		{
			name:     "JSON ciphertext with escapes",
			input:    `{"ciphertext": "KIRAK \"SFJAN\""}`,
			expected: `{[REDACTED_TEXT]}`,
		},
		{
			name:     "file path",
			input:    "failed to open /home/alice/vectors/sol-test.txt",
			expected: "failed to open [REDACTED_PATH]",
		},
		{
			name:     "Windows path",
			input:    "Access denied to C:\\Program Files\\App\\config.json",
			expected: "Access denied to [REDACTED_PATH]",
		},
		{
			name:     "stack trace",
			input:    "panic: runtime error\ngoroutine 1 [running]:\nmain.main()\n\t/app/main.go:42",
			expected: "[STACK_TRACE_REDACTED]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "", redact.Error(nil))
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("deck keyed with key=abc")
		wrapped := fmt.Errorf("keystream: %w", inner)
		assert.Equal(t, "keystream: deck keyed with [REDACTED_PASSPHRASE]", redact.Error(wrapped))
	})
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[REDACTED_PASSPHRASE](len=13)", redact.Passphrase("cryptonomicon"))
	assert.Equal(t, "[REDACTED_PASSPHRASE](len=0)", redact.Passphrase(""))
	assert.Equal(t, "[REDACTED_TEXT](len=9)", redact.Text("SOLITAIRE"))
	assert.NotContains(t, redact.Text("SOLITAIRE"), "SOLITAIRE")
}
