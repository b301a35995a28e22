package repository

import (
	"context"

	"foodpreorder/internal/domain/model"
)

// 注文コレクションの永続化。
// 各操作は全件のread-modify-write（インデックスは無く、毎回線形走査）。
type OrderRepository interface {
	Append(ctx context.Context, order model.Order) error
	List(ctx context.Context) ([]model.Order, error)

	// 見つからなければErrNotFound。Statusは任意の文字列をそのまま保存する。
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	// 一致する注文を全て取り除く。無ければErrNotFound。
	Delete(ctx context.Context, orderID string) error
}
