// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the process returned by
// [NewServer].
type Server interface {
	// RunServer runs until SIGTERM, SIGINT or SIGQUIT is received and then
	// shuts down gracefully.
	RunServer() error

	// Run starts every transport and worker and blocks until ctx is done or
	// one of them fails. Everything that was started is stopped before Run
	// returns.
	Run(ctx context.Context) error
}
