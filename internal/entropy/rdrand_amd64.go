// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entropy

import "golang.org/x/sys/cpu"

// rdrand64 executes the RDRAND instruction once. It is implemented in
// rdrand_amd64.s and must only be called if the CPU supports it.
func rdrand64() (word uint64, ok bool)

func supported() bool {
	return cpu.X86.HasRDRAND
}

func step() (uint64, bool) {
	if !cpu.X86.HasRDRAND {
		return 0, false
	}

	return rdrand64()
}
