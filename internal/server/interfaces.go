package server

// Server runs the HTTP transport of the task keeper.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then drains in-flight requests and returns.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// to finish.
	Shutdown()
}
