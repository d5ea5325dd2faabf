// Package server runs the HTTP server of go-feedback until its context is
// cancelled and then shuts it down gracefully within the configured timeout.
package server
