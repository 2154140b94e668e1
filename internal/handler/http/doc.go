// Package http implements the local HTTP API that UI shells use to observe
// and change the favorite comments of the logged-in user.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, metrics, and response compression are handled in
// this package before requests are delegated to the service layer.
package http
