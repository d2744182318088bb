// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the service layer, the notification gateway, and
// the background feed poller into a single process lifecycle.
package client
