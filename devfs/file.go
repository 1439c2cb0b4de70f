// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package devfs

import (
	"context"
	"io"
	"io/fs"
	"maps"
	"slices"
	"sync/atomic"
	"time"

	"github.com/aibor/randdev"
)

type node interface {
	open(name string) (fs.File, error)
	mode() fs.FileMode
}

var (
	_ fs.FileInfo = (*fileInfo)(nil)
	_ fs.DirEntry = (*dirEntry)(nil)
)

type dirEntry struct {
	name string
	node node
}

func (e *dirEntry) Name() string      { return e.name }
func (e *dirEntry) Type() fs.FileMode { return e.node.mode().Type() }
func (e *dirEntry) IsDir() bool       { return e.node.mode().IsDir() }
func (e *dirEntry) String() string    { return fs.FormatDirEntry(e) }

func (e *dirEntry) Info() (fs.FileInfo, error) {
	file, err := e.node.open(e.name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return file.Stat() //nolint:wrapcheck
}

type fileInfo struct {
	name string
	stat randdev.Filestat
}

func (i *fileInfo) Name() string       { return i.name }
func (i *fileInfo) Size() int64        { return int64(i.stat.Size) } //nolint:gosec
func (i *fileInfo) Mode() fs.FileMode  { return mode(i.stat.FileType) }
func (i *fileInfo) ModTime() time.Time { return i.stat.Mtim }
func (i *fileInfo) IsDir() bool        { return i.Mode().IsDir() }
func (i *fileInfo) Sys() any           { return i.stat }
func (i *fileInfo) String() string     { return fs.FormatFileInfo(i) }

// mode returns the file mode for the given file type.
func mode(fileType randdev.FileType) fs.FileMode {
	switch fileType {
	case randdev.FileTypeRegularFile:
		return defaultFileMode
	case randdev.FileTypeDirectory:
		return defaultDirMode | fs.ModeDir
	case randdev.FileTypeBlockDevice:
		return defaultFileMode | fs.ModeDevice
	case randdev.FileTypeCharacterDevice:
		return defaultFileMode | fs.ModeDevice | fs.ModeCharDevice
	case randdev.FileTypeSocketDgram, randdev.FileTypeSocketStream:
		return defaultFileMode | fs.ModeSocket
	case randdev.FileTypeSymbolicLink:
		return defaultFileMode | fs.ModeSymlink
	default:
		return defaultFileMode | fs.ModeIrregular
	}
}

var _ node = device(nil)

type device func() *randdev.Device

func (d device) mode() fs.FileMode {
	stat, _ := d().Filestat(context.Background())
	return mode(stat.FileType)
}

func (d device) open(name string) (fs.File, error) {
	return &deviceFile{
		name:   name,
		device: d(),
	}, nil
}

var (
	_ fs.File     = (*deviceFile)(nil)
	_ io.Writer   = (*deviceFile)(nil)
	_ io.Seeker   = (*deviceFile)(nil)
	_ io.ReaderAt = (*deviceFile)(nil)
)

// deviceFile is an open device node. It uses a background context for all
// device calls, as the [fs.File] interface does not carry one.
type deviceFile struct {
	name   string
	device randdev.File
	closed atomic.Bool
}

// Stat implements [fs.File].
func (f *deviceFile) Stat() (fs.FileInfo, error) {
	if f.closed.Load() {
		return nil, f.error("stat", ErrFileClosed)
	}

	stat, err := f.device.Filestat(context.Background())
	if err != nil {
		return nil, f.error("stat", err)
	}

	return &fileInfo{name: f.name, stat: stat}, nil
}

// Read implements [fs.File]. It fills the given buffer completely.
func (f *deviceFile) Read(b []byte) (int, error) {
	if f.closed.Load() {
		return 0, f.error("read", ErrFileClosed)
	}

	n, err := f.device.ReadVectored(context.Background(), [][]byte{b})
	if err != nil {
		return int(n), f.error("read", err) //nolint:gosec
	}

	return int(n), nil //nolint:gosec
}

// ReadAt implements [io.ReaderAt]. The offset is ignored.
func (f *deviceFile) ReadAt(b []byte, off int64) (int, error) {
	if f.closed.Load() {
		return 0, f.error("read", ErrFileClosed)
	}

	n, err := f.device.ReadVectoredAt(
		context.Background(),
		[][]byte{b},
		uint64(off), //nolint:gosec
	)
	if err != nil {
		return int(n), f.error("read", err) //nolint:gosec
	}

	return int(n), nil //nolint:gosec
}

// Write implements [io.Writer]. The data is discarded.
func (f *deviceFile) Write(b []byte) (int, error) {
	if f.closed.Load() {
		return 0, f.error("write", ErrFileClosed)
	}

	n, err := f.device.WriteVectored(context.Background(), [][]byte{b})
	if err != nil {
		return int(n), f.error("write", err) //nolint:gosec
	}

	return int(n), nil //nolint:gosec
}

// Seek implements [io.Seeker]. The position is always 0.
func (f *deviceFile) Seek(offset int64, whence int) (int64, error) {
	if f.closed.Load() {
		return 0, f.error("seek", ErrFileClosed)
	}

	pos, err := f.device.Seek(context.Background(), offset, whence)
	if err != nil {
		return 0, f.error("seek", err)
	}

	return int64(pos), nil //nolint:gosec
}

// Close implements [fs.File].
func (f *deviceFile) Close() error {
	if f.closed.Swap(true) {
		return f.error("close", ErrFileClosed)
	}

	return nil
}

func (f *deviceFile) error(op string, err error) error {
	return &PathError{
		Op:   op,
		Path: f.name,
		Err:  err,
	}
}

var _ node = directory(nil)

type directory map[string]node

func (directory) mode() fs.FileMode {
	return mode(randdev.FileTypeDirectory)
}

func (d directory) open(name string) (fs.File, error) {
	return &dirFile{
		info: fileInfo{
			name: name,
			stat: randdev.Filestat{FileType: randdev.FileTypeDirectory},
		},
		entries: d.entries(),
	}, nil
}

func (d directory) entries() []fs.DirEntry {
	entries := make([]fs.DirEntry, 0, len(d))

	for _, name := range slices.Sorted(maps.Keys(d)) {
		entries = append(entries, &dirEntry{
			name: name,
			node: d[name],
		})
	}

	return entries
}

var _ fs.ReadDirFile = (*dirFile)(nil)

type dirFile struct {
	info    fileInfo
	entries []fs.DirEntry
	offset  int
}

// Stat implements [fs.File].
func (f *dirFile) Stat() (fs.FileInfo, error) {
	return &f.info, nil
}

// Read implements [fs.File].
func (f *dirFile) Read(_ []byte) (int, error) {
	return 0, &PathError{
		Op:   "read",
		Path: f.info.name,
		Err:  ErrFileInvalid,
	}
}

// Close implements [fs.File].
func (*dirFile) Close() error {
	return nil
}

// ReadDir implements [fs.ReadDirFile].
func (f *dirFile) ReadDir(count int) ([]fs.DirEntry, error) {
	start := f.offset
	end := len(f.entries)
	available := end - start

	if available == 0 && count > 0 {
		return nil, io.EOF
	}

	if count > 0 && available > count {
		end = start + count
	}

	f.offset = end

	return f.entries[start:end], nil
}
