package cart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend stores one JSON blob per session under a data directory,
// the single-box analog of the browser's local storage.
type FileBackend struct {
	dir string
}

// NewFileBackend ensures the data directory exists and returns the backend.
func NewFileBackend(dir string) (*FileBackend, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cart data dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) Load(_ context.Context, sessionID string) ([]byte, bool, error) {
	path, err := f.pathFor(sessionID)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileBackend) Save(_ context.Context, sessionID string, data []byte) error {
	path, err := f.pathFor(sessionID)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// pathFor rejects session ids that would escape the data directory.
func (f *FileBackend) pathFor(sessionID string) (string, error) {
	if sessionID == "" || strings.ContainsAny(sessionID, `/\`) || strings.Contains(sessionID, "..") {
		return "", fmt.Errorf("invalid session id %q", sessionID)
	}
	return filepath.Join(f.dir, sessionID+".json"), nil
}
