// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP API, the optional gRPC health
// server and the background workers, including startup, signal handling,
// and graceful shutdown of everything that was started.
package server
