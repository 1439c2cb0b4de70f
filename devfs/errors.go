// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package devfs

import (
	"io/fs"
)

var (
	// ErrFileNotExist is returned if a node that is looked up does not exist.
	ErrFileNotExist = fs.ErrNotExist

	// ErrFileInvalid is returned if a file is invalid for the requested
	// operation.
	ErrFileInvalid = fs.ErrInvalid

	// ErrFileClosed is returned if a file is used after it has been closed.
	ErrFileClosed = fs.ErrClosed
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
