package storage

import (
	"context"
	"errors"
)

// まだ一度も保存されていないキー
var ErrNoBlob = errors.New("no blob")

// BlobStore は「固定キー1つにつきテキスト1塊」の保存先。
// 保存は常に全体の上書き（追記ログやバージョン管理は無し）。
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
