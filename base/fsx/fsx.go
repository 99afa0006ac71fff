// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides the small filesystem helpers behind
// base/iox/tomlx.OpenFromPaths, which reads a TOML file from the first
// of several search paths that holds it. Trimmed from the teacher's much
// larger fsx grab-bag (GOPATH lookup, directory listing, file copy, etc.)
// down to FindFilesOnPaths, the one function base/iox/tomlx calls, and
// the FileExists helper it uses: everything else in that package had no
// caller anywhere in this module.
package fsx

import (
	"errors"
	"os"
	"path/filepath"
)

// FileExists reports whether filePath exists and is a regular file.
func FileExists(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err == nil {
		return !info.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths locates file among paths in order, returning
// filepath.Join(path, file) for every path in which it exists, in the
// order of paths (tomlx.OpenFromPaths reads the first one).
func FindFilesOnPaths(paths []string, file string) []string {
	var found []string
	for _, path := range paths {
		fp := filepath.Join(path, file)
		if ok, _ := FileExists(fp); ok {
			found = append(found, fp)
		}
	}
	return found
}
