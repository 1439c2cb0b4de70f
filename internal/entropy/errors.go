// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package entropy

import "errors"

// ErrUnavailable is returned if the hardware instruction failed on every
// attempt within [MaxAttempts].
var ErrUnavailable = errors.New("hardware entropy unavailable")
