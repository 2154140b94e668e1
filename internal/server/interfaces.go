package server

import "context"

// Server defines the lifecycle contract of the local API server.
type Server interface {
	// RunServer serves requests until ctx is done, then shuts down
	// gracefully. It returns nil after a clean shutdown.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
