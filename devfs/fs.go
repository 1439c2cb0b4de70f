// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package devfs

import (
	"io/fs"
	"log/slog"

	"github.com/aibor/randdev"
)

const (
	defaultFileMode = 0o444
	defaultDirMode  = 0o555
)

// Names of the device nodes.
const (
	Random  = "random"
	URandom = "urandom"
)

var _ fs.FS = (*FS)(nil)

// FS is a read-only [fs.FS] that contains the random device nodes.
type FS struct {
	root directory
}

// New creates a new [FS] backed by the CPU's random number generator.
func New() *FS {
	return newFS(randdev.New)
}

// NewWithSource creates a new [FS] whose devices read from the given
// source. See [randdev.NewWithSource].
func NewWithSource(source func() (uint64, bool)) *FS {
	return newFS(func() *randdev.Device {
		return randdev.NewWithSource(source)
	})
}

func newFS(newDevice func() *randdev.Device) *FS {
	return &FS{
		root: directory{
			Random:  device(newDevice),
			URandom: device(newDevice),
		},
	}
}

// Open opens the named file.
//
// Opening a device node creates a new device handle. It returns a [PathError]
// in case of errors.
func (fsys *FS) Open(name string) (fs.File, error) {
	file, err := fsys.open(name)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  err,
		}
	}

	return file, nil
}

func (fsys *FS) open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, ErrFileInvalid
	}

	if name == "." {
		return fsys.root.open(name)
	}

	node, exists := fsys.root[name]
	if !exists {
		return nil, ErrFileNotExist
	}

	slog.Debug("Open random device", slog.String("name", name))

	return node.open(name)
}
