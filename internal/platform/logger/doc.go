// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON
// (or text) logging with configurable log levels. Every handler built by Setup
// scrubs passphrases and message text from log attributes before they are written.
package logger
