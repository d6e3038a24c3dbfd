package infra

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileBlobStore keeps one file per storage key in a directory. An absent
// file means the key was never written, mirroring browser local storage.
type FileBlobStore struct {
	dir string
}

func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBlobStore{dir: dir}, nil
}

func (s *FileBlobStore) path(key string) string {
	// Storage keys are fixed identifiers, not user input; the replacement
	// only guards against path separators.
	safe := strings.NewReplacer("/", "_", string(os.PathSeparator), "_").Replace(key)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FileBlobStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *FileBlobStore) Put(_ context.Context, key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *FileBlobStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
