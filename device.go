// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package randdev

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aibor/randdev/internal/entropy"
)

// Operation names as used in [Error].
const (
	opFdstatSetFlags   = "fd_fdstat_set_flags"
	opFilestatSetSize  = "fd_filestat_set_size"
	opFilestatSetTimes = "fd_filestat_set_times"
	opAllocate         = "fd_allocate"
	opRead             = "fd_read"
	opPread            = "fd_pread"
)

var _ File = (*Device)(nil)

// Device is a read-only virtual random device.
//
// Reads fill the given buffers completely with bytes from the hardware random
// number generator. Writes are discarded. The device has no content, so
// offsets are ignored and seeking always ends up at position 0.
//
// Metadata is set once on creation and never changes. A Device holds no
// mutable state and is safe for concurrent use.
type Device struct {
	source     entropy.Source
	flags      FdFlags
	accessTime time.Time
	modifyTime time.Time
	createTime time.Time
}

// New creates a new [Device] backed by the CPU's random number generator.
func New() *Device {
	return NewWithSource(entropy.Hardware)
}

// NewWithSource creates a new [Device] that reads from the given source.
//
// The source performs a single randomness instruction attempt and returns the
// random word and whether the attempt succeeded. It is retried as often as the
// hardware source would be.
func NewWithSource(source func() (uint64, bool)) *Device {
	now := time.Now()

	return &Device{
		source:     source,
		accessTime: now,
		modifyTime: now,
		createTime: now,
	}
}

// FileType implements [File].
//
// It reports a regular file, while [Device.Filestat] reports a datagram
// socket. Hosts rely on both values as they are.
func (*Device) FileType(_ context.Context) (FileType, error) {
	return FileTypeRegularFile, nil
}

// FdFlags implements [File]. It returns the flags set on creation.
func (d *Device) FdFlags(_ context.Context) (FdFlags, error) {
	return d.flags, nil
}

// SetFdFlags implements [File]. It always fails with [ErrReadOnly].
func (*Device) SetFdFlags(_ context.Context, _ FdFlags) error {
	return readOnly(opFdstatSetFlags)
}

// Filestat implements [File].
//
// All numeric fields are zero. Timestamps are the creation time of the
// device.
func (d *Device) Filestat(_ context.Context) (Filestat, error) {
	return Filestat{
		FileType: FileTypeSocketDgram,
		Atim:     d.accessTime,
		Mtim:     d.modifyTime,
		Ctim:     d.createTime,
	}, nil
}

// SetFilestatSize implements [File]. It always fails with [ErrReadOnly].
func (*Device) SetFilestatSize(_ context.Context, _ uint64) error {
	return readOnly(opFilestatSetSize)
}

// SetTimes implements [File]. It always fails with [ErrReadOnly].
func (*Device) SetTimes(_ context.Context, _, _ *SystemTimeSpec) error {
	return readOnly(opFilestatSetTimes)
}

// Advise implements [File]. It does nothing.
func (*Device) Advise(_ context.Context, _, _ uint64, _ Advice) error {
	return nil
}

// Allocate implements [File]. It always fails with [ErrReadOnly].
func (*Device) Allocate(_ context.Context, _, _ uint64) error {
	return readOnly(opAllocate)
}

// Sync implements [File]. There is nothing to flush.
func (*Device) Sync(_ context.Context) error {
	return nil
}

// Datasync implements [File]. There is nothing to flush.
func (*Device) Datasync(_ context.Context) error {
	return nil
}

// ReadVectored implements [File].
//
// Each buffer is filled completely with random bytes. If the hardware fails
// to provide random bytes, the read is aborted and the number of bytes filled
// so far is returned along with an error wrapping [ErrEntropyUnavailable].
func (d *Device) ReadVectored(ctx context.Context, bufs [][]byte) (uint64, error) {
	return d.readVectored(ctx, opRead, bufs)
}

// ReadVectoredAt implements [File]. The offset is ignored, so it behaves like
// [Device.ReadVectored].
func (d *Device) ReadVectoredAt(
	ctx context.Context,
	bufs [][]byte,
	_ uint64,
) (uint64, error) {
	return d.readVectored(ctx, opPread, bufs)
}

// Peek implements [File]. It fills the given buffer like a single segment
// [Device.ReadVectored]. There is no read position to preserve.
func (d *Device) Peek(ctx context.Context, buf []byte) (uint64, error) {
	return d.readVectored(ctx, opRead, [][]byte{buf})
}

// WriteVectored implements [File]. The data is discarded and the total
// length of all buffers is returned.
func (*Device) WriteVectored(_ context.Context, bufs [][]byte) (uint64, error) {
	return discard(bufs), nil
}

// WriteVectoredAt implements [File]. It behaves like [Device.WriteVectored].
func (*Device) WriteVectoredAt(
	_ context.Context,
	bufs [][]byte,
	_ uint64,
) (uint64, error) {
	return discard(bufs), nil
}

// Seek implements [File]. The position is always 0.
func (*Device) Seek(_ context.Context, _ int64, _ int) (uint64, error) {
	return 0, nil
}

// NumReadyBytes implements [File]. Nothing is buffered, so it is always 0.
func (*Device) NumReadyBytes(_ context.Context) (uint64, error) {
	return 0, nil
}

// Readable implements [File]. The device is always readable.
func (*Device) Readable(_ context.Context) error {
	return nil
}

// Writable implements [File]. The device is always writable.
func (*Device) Writable(_ context.Context) error {
	return nil
}

func (d *Device) readVectored(
	ctx context.Context,
	op string,
	bufs [][]byte,
) (uint64, error) {
	var total uint64

	for _, buf := range bufs {
		if err := ctx.Err(); err != nil {
			return total, &Error{Op: op, Err: err}
		}

		n, err := d.fill(buf)
		total += uint64(n)

		if err != nil {
			slog.Warn("Failed to read from random device",
				slog.String("op", op),
				slog.Uint64("read", total),
				slog.Any("error", err),
			)

			return total, &Error{
				Op:  op,
				Err: fmt.Errorf("unable to obtain random bytes: %w", err),
			}
		}
	}

	return total, nil
}

// fill fills the buffer completely or fails.
func (d *Device) fill(buf []byte) (int, error) {
	var filled int

	for filled < len(buf) {
		n, err := d.source.Fill(buf[filled:])
		filled += n

		if err != nil {
			return filled, err //nolint:wrapcheck
		}
	}

	return filled, nil
}

func discard(bufs [][]byte) uint64 {
	var total uint64

	for _, buf := range bufs {
		total += uint64(len(buf))
	}

	return total
}

func readOnly(op string) error {
	slog.Debug("Rejected write access to read only device",
		slog.String("op", op))

	return &Error{Op: op, Err: ErrReadOnly}
}
