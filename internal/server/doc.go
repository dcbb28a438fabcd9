// Package server runs the development backend's HTTP listener.
//
// It owns startup, signal handling and graceful shutdown.
package server
