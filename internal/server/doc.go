// Package server runs the local HTTP API.
//
// It owns the listener lifecycle: serving until the run context is done and
// then shutting down gracefully within a bounded time.
package server
