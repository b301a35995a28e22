package repository

import (
	"context"
	"encoding/json"
	"errors"

	"foodpreorder/internal/domain/model"
	"foodpreorder/internal/infra/storage"
)

// カートの保存キー（元のlocalStorageキーをそのまま使う）
const cartKey = "foodCart"

// CartBlobRepository はカート全体をJSON1塊で読み書きする。
type CartBlobRepository struct {
	store storage.BlobStore
}

func NewCartBlobRepository(store storage.BlobStore) *CartBlobRepository {
	return &CartBlobRepository{store: store}
}

// 未保存は空カート扱い（エラーにしない）。
func (r *CartBlobRepository) Load(ctx context.Context) ([]model.CartLine, error) {
	data, err := r.store.Load(ctx, cartKey)
	if errors.Is(err, storage.ErrNoBlob) {
		return []model.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	return lines, nil
}

func (r *CartBlobRepository) Save(ctx context.Context, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, cartKey, data)
}
