package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps objects under a root directory and maps keys onto public
// URLs below baseURL (served by the guarded /media route).
type FSStore struct {
	root    string
	baseURL string
}

func NewFSStore(root, baseURL string) *FSStore {
	return &FSStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

var _ Store = (*FSStore)(nil)

func (s *FSStore) Put(key string, data []byte, contentType string) (string, error) {
	clean := filepath.ToSlash(filepath.Clean(key))
	if clean == "." || strings.HasPrefix(clean, "..") || strings.HasPrefix(clean, "/") {
		return "", ErrInvalidKey
	}

	full := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("storage mkdir: %w", err)
	}

	// O_EXCL enforces the no-overwrite contract.
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", ErrKeyExists
		}
		return "", fmt.Errorf("storage create: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("storage write: %w", err)
	}

	return s.baseURL + "/" + clean, nil
}
