package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// FileIO is the file-access capability the store reads and writes through.
// Implementations must not keep the file open between calls.
type FileIO interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// OSFileIO implements FileIO on the local filesystem. Writes replace the
// target atomically: data goes to a pending file in the same directory,
// which is synced and renamed over the target.
type OSFileIO struct {
	// Perm is the mode for newly created files. Zero means 0644.
	Perm os.FileMode
}

// ReadFile returns the contents of path.
func (f OSFileIO) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile atomically replaces path with data, creating parent directories
// as needed. Existing file permissions are preserved.
func (f OSFileIO) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	perm := f.Perm
	if perm == 0 {
		perm = 0644
	}

	pending, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(perm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	// No-op once the pending file has been committed.
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write config data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace config file: %w", err)
	}
	return nil
}

var _ FileIO = OSFileIO{}
