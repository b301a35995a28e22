package repository

import (
	"context"
	"encoding/json"
	"errors"

	"foodpreorder/internal/domain/model"
	"foodpreorder/internal/infra/storage"
	repo "foodpreorder/internal/repository"
)

// 注文コレクションの保存キー（元のlocalStorageキーをそのまま使う）
const ordersKey = "foodOrders"

// OrderBlobRepository は注文全件をJSON1塊で読み書きする。
// 各操作は全件のread-modify-write。
type OrderBlobRepository struct {
	store storage.BlobStore
}

func NewOrderBlobRepository(store storage.BlobStore) *OrderBlobRepository {
	return &OrderBlobRepository{store: store}
}

func (r *OrderBlobRepository) load(ctx context.Context) ([]model.Order, error) {
	data, err := r.store.Load(ctx, ordersKey)
	if errors.Is(err, storage.ErrNoBlob) {
		return []model.Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (r *OrderBlobRepository) save(ctx context.Context, orders []model.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return r.store.Save(ctx, ordersKey, data)
}

func (r *OrderBlobRepository) Append(ctx context.Context, order model.Order) error {
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(orders, order))
}

// 未保存は空コレクション扱い。
func (r *OrderBlobRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.load(ctx)
}

// 線形走査で該当idを探してstatusだけ書き換える。
// 値の妥当性チェックはしない（任意の文字列をそのまま保存）。
func (r *OrderBlobRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			found = true
		}
	}
	if !found {
		return repo.ErrNotFound
	}

	return r.save(ctx, orders)
}

func (r *OrderBlobRepository) Delete(ctx context.Context, orderID string) error {
	orders, err := r.load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != orderID {
			remaining = append(remaining, o)
		}
	}
	if len(remaining) == len(orders) {
		return repo.ErrNotFound
	}

	return r.save(ctx, remaining)
}
