package server

// Server is a transport that can be started and stopped.
type Server interface {
	// RunServer blocks until the server has stopped. The top-level server
	// stops on SIGTERM, SIGINT or SIGQUIT.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight calls.
	Shutdown()
}
