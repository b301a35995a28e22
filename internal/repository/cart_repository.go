package repository

import (
	"context"

	"foodpreorder/internal/domain/model"
)

// カート全体の読み書き。
// 保存は常に全明細の上書き（部分更新は無し）。
type CartRepository interface {
	Load(ctx context.Context) ([]model.CartLine, error)
	Save(ctx context.Context, lines []model.CartLine) error
}
