// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to the settings of the HTTP server and the deck shuffling defaults
// while keeping configuration details separate from the cipher itself.
package config
