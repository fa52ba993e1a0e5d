// Package service contains the application use cases: encrypting and decrypting
// messages, producing raw keystream, and shuffling decks. It sits between the
// delivery mechanisms (HTTP API, CLI) and the pure domain packages in
// internal/domain, adding input validation, structured logging and error
// translation.
//
// Services receive their dependencies through constructor injection and take a
// context.Context on every operation so the caller's logger and cancellation
// flow through.
package service
