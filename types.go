// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package randdev

import (
	"strconv"
	"strings"
	"time"
)

// FileType is the type of a file as reported to the sandbox guest. Values
// match the WASI filetype enumeration.
type FileType uint8

const (
	FileTypeUnknown FileType = iota
	FileTypeBlockDevice
	FileTypeCharacterDevice
	FileTypeDirectory
	FileTypeRegularFile
	FileTypeSocketDgram
	FileTypeSocketStream
	FileTypeSymbolicLink
)

var fileTypeNames = [...]string{
	FileTypeUnknown:         "unknown",
	FileTypeBlockDevice:     "block_device",
	FileTypeCharacterDevice: "character_device",
	FileTypeDirectory:       "directory",
	FileTypeRegularFile:     "regular_file",
	FileTypeSocketDgram:     "socket_dgram",
	FileTypeSocketStream:    "socket_stream",
	FileTypeSymbolicLink:    "symbolic_link",
}

func (t FileType) String() string {
	if int(t) < len(fileTypeNames) {
		return fileTypeNames[t]
	}

	return "filetype(" + strconv.Itoa(int(t)) + ")"
}

// FdFlags are file descriptor flags. Values match the WASI fdflags bits.
type FdFlags uint16

const (
	FdFlagAppend FdFlags = 1 << iota
	FdFlagDSync
	FdFlagNonBlock
	FdFlagRSync
	FdFlagSync
)

var fdFlagNames = []struct {
	flag FdFlags
	name string
}{
	{FdFlagAppend, "append"},
	{FdFlagDSync, "dsync"},
	{FdFlagNonBlock, "nonblock"},
	{FdFlagRSync, "rsync"},
	{FdFlagSync, "sync"},
}

// Has reports whether all of the given flags are set.
func (f FdFlags) Has(flags FdFlags) bool {
	return f&flags == flags
}

func (f FdFlags) String() string {
	if f == 0 {
		return "none"
	}

	names := make([]string, 0, len(fdFlagNames))

	for _, entry := range fdFlagNames {
		if f.Has(entry.flag) {
			names = append(names, entry.name)
			f &^= entry.flag
		}
	}

	if f != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(f), 16))
	}

	return strings.Join(names, "|")
}

// Advice is a hint about the expected access pattern of file data.
type Advice uint8

const (
	AdviceNormal Advice = iota
	AdviceSequential
	AdviceRandom
	AdviceWillNeed
	AdviceDontNeed
	AdviceNoReuse
)

// Filestat is the metadata record of a file.
type Filestat struct {
	FileType FileType
	DeviceID uint64
	Inode    uint64
	Nlink    uint64
	Size     uint64
	Atim     time.Time
	Mtim     time.Time
	Ctim     time.Time
}

// SystemTimeSpec specifies a timestamp to set. If Now is true, Time is
// ignored and the current time is used.
type SystemTimeSpec struct {
	Now  bool
	Time time.Time
}
