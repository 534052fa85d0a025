// Package server runs the HTTP API and the optional gRPC health endpoint of
// the auth service and stops both on a termination signal.
package server
