// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entropy_test

import (
	"github.com/stretchr/testify/mock"
)

type MockStep struct {
	mock.Mock
}

func (m *MockStep) Step() (uint64, bool) {
	args := m.Called()
	return args.Get(0).(uint64), args.Bool(1) //nolint:forcetypeassert
}

// sequence returns a step function that yields the given words one after
// another and fails once they are exhausted. The returned counter holds the
// number of attempts made.
func sequence(words ...uint64) (func() (uint64, bool), *int) {
	var calls int

	return func() (uint64, bool) {
		calls++

		if len(words) == 0 {
			return 0, false
		}

		next := words[0]
		words = words[1:]

		return next, true
	}, &calls
}
