package server

// Server defines the lifecycle contract of the transport server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A nil error means the server stopped on request.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
