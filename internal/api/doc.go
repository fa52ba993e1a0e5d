// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It adapts the cipher and deck services to JSON
// over HTTP: handlers decode and validate a request, call a service, and map
// the outcome to a status code and a safe message.
package api
