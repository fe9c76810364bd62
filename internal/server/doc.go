// Package server wires and runs the application's HTTP server,
// including startup, signal handling, and graceful shutdown.
package server
