// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package randdev_test

import (
	"sync/atomic"

	"github.com/stretchr/testify/mock"
)

type MockStep struct {
	mock.Mock
}

func (m *MockStep) Step() (uint64, bool) {
	args := m.Called()
	return args.Get(0).(uint64), args.Bool(1) //nolint:forcetypeassert
}

// counter returns a step function that always succeeds with incrementing
// words, starting with 1.
func counter() func() (uint64, bool) {
	var next atomic.Uint64

	return func() (uint64, bool) {
		return next.Add(1), true
	}
}

// limited returns a step function that succeeds with incrementing words for
// the given number of calls and fails afterwards.
func limited(successes uint64) func() (uint64, bool) {
	var calls atomic.Uint64

	return func() (uint64, bool) {
		call := calls.Add(1)
		return call, call <= successes
	}
}

func buffers(lengths ...int) [][]byte {
	bufs := make([][]byte, 0, len(lengths))
	for _, length := range lengths {
		bufs = append(bufs, make([]byte, length))
	}

	return bufs
}
