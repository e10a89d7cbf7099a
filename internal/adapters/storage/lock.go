package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"workspace/internal/logging"
)

// FileLock serializes mutating invocations against the shared registry.
// The lock is held for the whole load-mutate-save span of a command.
type FileLock struct {
	file *os.File
	path string
}

// AcquireLock takes an exclusive lock on the file at path, creating it if
// needed. Blocks until the lock is available.
func AcquireLock(path string) (*FileLock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := lockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	logging.Logger.Debug("Registry lock acquired", "path", path)
	return &FileLock{file: file, path: path}, nil
}

// Release unlocks and closes the lock file
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}

	if err := unlockFile(l.file); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}

	logging.Logger.Debug("Registry lock released", "path", l.path)
	err := l.file.Close()
	l.file = nil
	return err
}
