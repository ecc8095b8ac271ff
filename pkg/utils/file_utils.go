package utils

import (
	"fmt"
	"os"

	errUtils "github.com/molecule-go/molecule/errors"
)

// IsDirectory reports whether the path exists and is a directory.
func IsDirectory(path string) (bool, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fileInfo.IsDir(), nil
}

// EnsureDir creates the directory (and any missing parents) if it does not exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", errUtils.ErrCreateDirectory, path, err)
	}
	return nil
}

// WriteFile writes content to the specified file verbatim.
func WriteFile(filePath string, content string, fileMode os.FileMode) error {
	if err := os.WriteFile(filePath, []byte(content), fileMode); err != nil {
		return fmt.Errorf("%w: %s: %w", errUtils.ErrFileOperation, filePath, err)
	}
	return nil
}
