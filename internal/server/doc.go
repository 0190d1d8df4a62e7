// Package server runs the application's HTTP transport.
//
// It covers startup, signal handling, and graceful shutdown bounded by the
// configured shutdown timeout.
package server
