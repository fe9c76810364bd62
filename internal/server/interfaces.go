package server

// Server is the lifecycle contract returned by [NewServer].
//
// RunServer blocks until the process receives a termination signal and the
// in-flight requests have drained; Shutdown stops the listener and releases
// its resources.
type Server interface {
	RunServer()
	Shutdown()
}
