// SPDX-License-Identifier: Apache-2.0

// Package client implements the kitchen display application runtime.
//
// It wires configuration, the server adapter, and the terminal UI into a
// single process lifecycle.
package client
