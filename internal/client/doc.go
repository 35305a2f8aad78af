// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the task keeper.
//
// Each subcommand parses its own flags, calls the server through an
// [adapter.ServerAdapter] and prints the result to the configured writer.
package client
