// Package ioutils provides file system utilities for mp3tools.
//
// This package contains functions for:
//   - Renaming files without clobbering existing ones
//   - Validating replacement file names
//   - File writing and directory creation
package ioutils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrTargetExists is returned by RenameFile when the destination already exists.
	ErrTargetExists = errors.New("target file already exists")

	// ErrInvalidFileName is returned by ValidateFileName.
	ErrInvalidFileName = errors.New("invalid file name")
)

// RenameFile renames src to dst within the file system.
//
// Unlike os.Rename, an existing dst is never replaced: ErrTargetExists is
// returned instead. A case-only rename of the same file (src and dst
// resolving to one file on a case-insensitive file system) is allowed.
//
// Example:
//
//	err := RenameFile("/music/01 Song_old.mp3", "/music/01 Song_new.mp3")
//	if errors.Is(err, ErrTargetExists) {
//	    // leave both files alone
//	}
func RenameFile(src, dst string) error {
	if src == dst {
		return nil
	}
	if dstInfo, err := os.Lstat(dst); err == nil {
		srcInfo, srcErr := os.Lstat(src)
		if srcErr != nil || !os.SameFile(srcInfo, dstInfo) {
			return fmt.Errorf("%w: %s", ErrTargetExists, dst)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Rename(src, dst)
}

// ValidateFileName checks that name can be used as a base name in the same
// directory: it must be non-empty, must not be "." or "..", and must not
// contain a path separator.
func ValidateFileName(name string) error {
	if strings.TrimSpace(name) == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}
	if strings.ContainsAny(name, `/`+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFileName, name)
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteFile writes data to a file, creating it if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
