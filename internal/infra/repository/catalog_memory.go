package repository

import (
	"context"
	"strings"

	"foodpreorder/internal/domain/model"
	repo "foodpreorder/internal/repository"
)

// CatalogMemoryRepository は起動時に渡された固定メニューを持つだけ。
type CatalogMemoryRepository struct {
	items []model.Item
}

func NewCatalogMemoryRepository(items []model.Item) *CatalogMemoryRepository {
	return &CatalogMemoryRepository{items: items}
}

// 検索・カテゴリ・価格帯をANDで絞り込む。
func (r *CatalogMemoryRepository) List(_ context.Context, q repo.CatalogListQuery) ([]model.Item, error) {
	term := strings.ToLower(strings.TrimSpace(q.Q))

	items := make([]model.Item, 0, len(r.items))
	for _, it := range r.items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Description), term) {
			continue
		}
		if q.Category != "" && q.Category != "all" && string(it.Category) != q.Category {
			continue
		}
		if !matchesPriceRange(it.Price, q.PriceRange) {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *CatalogMemoryRepository) FindByID(_ context.Context, id int64) (model.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.Item{}, repo.ErrNotFound
}

// low: 10.00未満 / medium: 10.00〜20.00 / high: 20.00超（セント単位）
func matchesPriceRange(price int64, rng string) bool {
	switch rng {
	case "low":
		return price < 1000
	case "medium":
		return price >= 1000 && price <= 2000
	case "high":
		return price > 2000
	default:
		return true
	}
}
