// Package http implements the REST transport of the auth service.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: request tracing, access logging, panic recovery, request
// timeouts, CORS, response compression and bearer-token authorization.
// Every error response is a JSON {"message": ...} body.
package http
