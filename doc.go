// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package randdev provides a read-only virtual random device for sandboxed
// execution environments.
//
// A [Device] implements the [File] capability set that a sandbox host uses to
// serve guest file descriptors. Reads are served directly from the CPU's
// hardware random number generator. Writes are accepted and discarded. All
// operations that would mutate the device fail with [ErrReadOnly].
//
// Metadata is fixed when the device is created. Timestamps are never updated
// by reads or writes.
//
// Registering a device into a host's file descriptor table is up to the host:
//
//	dev := randdev.New()
//
//	buf := make([]byte, 32)
//	_, err := dev.ReadVectored(ctx, [][]byte{buf})
//
// If the CPU does not provide a supported instruction, reads fail with
// [ErrEntropyUnavailable]. There is no software fallback.
package randdev
