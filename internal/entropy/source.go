// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entropy

import (
	"encoding/binary"
	"io"
)

// MaxAttempts is the number of instruction attempts made for a single word
// before giving up.
const MaxAttempts = 1024

// wordSize is the number of bytes in a word.
const wordSize = 8

// Source performs a single attempt of a randomness instruction. It returns
// the random word and whether the attempt succeeded.
//
// A Source is stateless. All methods are safe for concurrent use as long as
// the function itself is.
type Source func() (uint64, bool)

// Hardware is the [Source] backed by the running CPU.
var Hardware Source = step

// Reader is an [io.Reader] that reads from [Hardware].
var Reader io.Reader = Hardware

var _ io.Reader = Source(nil)

// Available reports whether the running CPU provides a supported randomness
// instruction.
func Available() bool {
	return supported()
}

// NextWord returns a random word.
//
// The instruction is attempted at most [MaxAttempts] times. The first
// successful attempt is returned. If all attempts fail, [ErrUnavailable] is
// returned.
func (s Source) NextWord() (uint64, error) {
	for range MaxAttempts {
		word, ok := s()
		if ok {
			return word, nil
		}
	}

	return 0, ErrUnavailable
}

// Fill overwrites the given buffer with random bytes.
//
// It returns the number of bytes written. Filling is best effort: if no word
// can be obtained, the bytes written so far are kept and their count is
// returned along with [ErrUnavailable]. Callers that need a complete buffer
// must check the count.
//
// Words are copied in native byte order. The last word might only be used
// partially. The remainder is discarded, so nothing is kept between calls.
func (s Source) Fill(buf []byte) (int, error) {
	var (
		word    [wordSize]byte
		written int
	)

	for written < len(buf) {
		next, err := s.NextWord()
		if err != nil {
			return written, err
		}

		binary.NativeEndian.PutUint64(word[:], next)

		written += copy(buf[written:], word[:])
	}

	return written, nil
}

// Read implements [io.Reader]. It is the same as [Source.Fill].
func (s Source) Read(buf []byte) (int, error) {
	return s.Fill(buf)
}
