package repository

import (
	"context"
	"errors"

	"foodpreorder/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type CatalogListQuery struct {
	Q          string
	Category   string
	PriceRange string // "" | "low" | "medium" | "high"
}

// 固定メニューの読み取りだけを約束。実行中の追加・削除は無い。
type CatalogRepository interface {
	List(ctx context.Context, q CatalogListQuery) ([]model.Item, error)
	FindByID(ctx context.Context, id int64) (model.Item, error)
}
