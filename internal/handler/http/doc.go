// Package http implements the browser-facing transport layer of go-feedback.
//
// It wires the chi router, renders the embedded html/template pages and maps
// service results to one of three outcomes: a page rendered with inline field
// errors, a redirect carrying a one-shot notice, or an error page. Request
// tracing, access logging, metrics and session lookup run as middleware
// before any handler sees the request.
package http
