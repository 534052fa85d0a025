package handler

import "errors"

// errNoHandlersAreCreated means the server config enables no transport.
var errNoHandlersAreCreated = errors.New("no handlers are created: set an HTTP or gRPC address")
