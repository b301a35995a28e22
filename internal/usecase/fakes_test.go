package usecase

import (
	"context"
	"time"

	"foodpreorder/internal/domain/model"
	repo "foodpreorder/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository fakes / mocks
// =====================

// fakeCartRepo はメモリ上のカート。Save回数も数える。
type fakeCartRepo struct {
	lines     []model.CartLine
	loadErr   error
	saveErr   error
	saveCalls int
}

func (f *fakeCartRepo) Load(_ context.Context) ([]model.CartLine, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	out := make([]model.CartLine, len(f.lines))
	copy(out, f.lines)
	return out, nil
}

func (f *fakeCartRepo) Save(_ context.Context, lines []model.CartLine) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCalls++
	f.lines = make([]model.CartLine, len(lines))
	copy(f.lines, lines)
	return nil
}

// fakeOrderRepo はメモリ上の注文コレクション。
type fakeOrderRepo struct {
	orders    []model.Order
	appendErr error
}

func (f *fakeOrderRepo) Append(_ context.Context, order model.Order) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, len(f.orders))
	copy(out, f.orders)
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, orderID string, status model.OrderStatus) error {
	found := false
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			found = true
		}
	}
	if !found {
		return repo.ErrNotFound
	}
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, orderID string) error {
	remaining := make([]model.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if o.ID != orderID {
			remaining = append(remaining, o)
		}
	}
	if len(remaining) == len(f.orders) {
		return repo.ErrNotFound
	}
	f.orders = remaining
	return nil
}

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) List(ctx context.Context, q repo.CatalogListQuery) ([]model.Item, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *CatalogRepoMock) FindByID(ctx context.Context, id int64) (model.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

// =====================
// ID / clock stubs
// =====================

type stubIDGen struct {
	ids  []string
	next int
}

func (s *stubIDGen) NewID() string {
	if s.next >= len(s.ids) {
		return "stub-id"
	}
	id := s.ids[s.next]
	s.next++
	return id
}

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

// テスト用の固定メニュー（価格はセント）
func testPizza() model.Item {
	return model.Item{
		ID:          1,
		Name:        "Margherita Pizza",
		Description: "Classic pizza",
		Price:       1299,
		Category:    model.CategoryMain,
	}
}

func testBread() model.Item {
	return model.Item{
		ID:          2,
		Name:        "Garlic Bread",
		Description: "Freshly baked bread",
		Price:       599,
		Category:    model.CategoryAppetizer,
	}
}
