// Package http implements the HTTP transport layer of the capture service.
//
// It wires a single route, GET /, which returns the resolved capture storage
// path as plain text. Request tracing, access logging and panic recovery are
// applied as middleware before the request reaches the handler.
package http
