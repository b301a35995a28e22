package storage

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore はキーごとに1ファイル（<key>.json）を置く。
// サーバー無しで動くデフォルトの保存先。
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNoBlob
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o644)
}
