package server

import "context"

// Server defines the lifecycle contract of the bot process.
type Server interface {
	// RunServer starts all components and blocks until SIGTERM, SIGINT or
	// SIGQUIT is received and shutdown has completed.
	RunServer()

	// Run is RunServer driven by ctx instead of process signals.
	Run(ctx context.Context)

	// Shutdown asks a running server to stop. Run returns once it has.
	Shutdown()
}
