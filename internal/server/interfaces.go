package server

import "context"

// Server defines the lifecycle contract of the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// ShutdownHook drains one background component during graceful shutdown. The
// context bounds how long the drain may take.
type ShutdownHook func(ctx context.Context)
