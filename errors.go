// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package randdev

import (
	"errors"
	"fmt"

	"github.com/aibor/randdev/internal/entropy"
)

var (
	// ErrReadOnly is returned by all operations that would mutate the
	// device's flags, size, timestamps or allocation.
	ErrReadOnly = errors.New("read only device")

	// ErrEntropyUnavailable is returned if the hardware random number
	// generator could not provide random bytes.
	ErrEntropyUnavailable = entropy.ErrUnavailable
)

// Error records a failed device operation.
type Error struct {
	Op  string
	Err error
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Is implements the [errors.Is] interface.
func (*Error) Is(other error) bool {
	_, ok := other.(*Error)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *Error) Unwrap() error {
	return e.Err
}
