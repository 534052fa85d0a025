// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoServersToRun      = errors.New("no servers to run")
	errListenGRPC          = errors.New("failed to listen on gRPC address")
	errListenHTTP          = errors.New("failed to listen on HTTP address")
	errServerStopped       = errors.New("server stopped without a shutdown request")
)
