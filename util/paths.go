// SPDX-License-Identifier: ISC
// Copyright (c) 2020 userevolution
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - path helpers for configuration handling
//
// Entries in a configuration file may be relative; they are resolved
// against the directory holding the file itself.
package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a possibly relative path against a base
// directory, returning a cleaned absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true when the named file is present
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
