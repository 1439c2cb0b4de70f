// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package entropy provides random bytes drawn directly from the CPU's
// hardware random number generator.
//
// A single instruction attempt may fail transiently. [Source.NextWord] retries
// it a bounded number of times ([MaxAttempts]) and reports [ErrUnavailable]
// once the bound is exceeded. [Source.Fill] turns words into an arbitrary
// length byte stream.
//
// There is no software fallback. On CPUs or architectures without a supported
// instruction every attempt fails. Use [Available] to check beforehand.
package entropy
