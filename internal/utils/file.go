package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates a single directory level if it doesn't exist.
// Missing parents are not created.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.Mkdir(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}
	return nil
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// BaseName returns the final element of a path, extension included
func BaseName(path string) string {
	return filepath.Base(path)
}
