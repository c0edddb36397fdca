// Package server runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling, graceful shutdown
// of in-flight requests, and draining of registered background components.
package server
