// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !amd64

package entropy

// No supported instruction on this architecture.

func supported() bool {
	return false
}

func step() (uint64, bool) {
	return 0, false
}
