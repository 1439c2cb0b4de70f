// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package randdev

import "context"

// File is the capability set a sandbox host requires from a virtual file.
//
// Vectored operations take a list of buffer segments that are processed in
// order as one logical operation. Offsets are absolute positions in the file
// content.
type File interface {
	FileType(ctx context.Context) (FileType, error)
	FdFlags(ctx context.Context) (FdFlags, error)
	SetFdFlags(ctx context.Context, flags FdFlags) error
	Filestat(ctx context.Context) (Filestat, error)
	SetFilestatSize(ctx context.Context, size uint64) error
	SetTimes(ctx context.Context, atime, mtime *SystemTimeSpec) error
	Advise(ctx context.Context, offset, length uint64, advice Advice) error
	Allocate(ctx context.Context, offset, length uint64) error
	Sync(ctx context.Context) error
	Datasync(ctx context.Context) error

	ReadVectored(ctx context.Context, bufs [][]byte) (uint64, error)
	ReadVectoredAt(ctx context.Context, bufs [][]byte, offset uint64) (uint64, error)
	WriteVectored(ctx context.Context, bufs [][]byte) (uint64, error)
	WriteVectoredAt(ctx context.Context, bufs [][]byte, offset uint64) (uint64, error)
	Peek(ctx context.Context, buf []byte) (uint64, error)
	Seek(ctx context.Context, offset int64, whence int) (uint64, error)

	NumReadyBytes(ctx context.Context) (uint64, error)
	Readable(ctx context.Context) error
	Writable(ctx context.Context) error
}
