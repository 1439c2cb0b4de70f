// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package devfs provides an [io/fs.FS] with random device nodes.
//
// The file system has a flat root directory with the nodes "random" and
// "urandom". Both are served by the hardware random number generator. Every
// [FS.Open] creates a new, independent [randdev.Device] that lives until the
// returned file is closed.
//
// Open device files implement [io.Writer], [io.Seeker] and [io.ReaderAt] in
// addition to [fs.File]. Reads never return [io.EOF], so do not use
// [fs.ReadFile] on device nodes. Limit the read instead:
//
//	file, err := fsys.Open("random")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//
//	key := make([]byte, 32)
//	_, err = io.ReadFull(file, key)
package devfs
