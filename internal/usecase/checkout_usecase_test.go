package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"foodpreorder/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validCheckoutInput(opt string) PlaceOrderInput {
	return PlaceOrderInput{
		Name:           "John Smith",
		Email:          "john@example.com",
		Phone:          "090-0000-0000",
		Address:        "1-2-3 Somewhere",
		DeliveryOption: opt,
	}
}

// Test: pickupは手数料なし、カートは空になり注文が1件増える
func TestCheckoutPickup(t *testing.T) {
	cartRepo := &fakeCartRepo{}
	orderRepo := &fakeOrderRepo{}
	catalogRepo := new(CatalogRepoMock)
	catalogRepo.On("FindByID", mock.Anything, int64(1)).Return(testPizza(), nil)

	cartUC := NewCartUsecase(cartRepo, catalogRepo)
	ctx := context.Background()
	_, _ = cartUC.Add(ctx, 1)
	_, _ = cartUC.ChangeQuantity(ctx, 1, 2)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := NewCheckoutUsecase(cartRepo, orderRepo,
		&stubIDGen{ids: []string{"order-1"}}, &stubClock{now: now}, 500)

	out, err := uc.PlaceOrder(ctx, validCheckoutInput("pickup"))
	assert.NoError(t, err)

	assert.Equal(t, "order-1", out.Order.ID)
	assert.Equal(t, int64(3897), out.Subtotal)
	assert.Equal(t, int64(0), out.DeliveryFee)
	assert.Equal(t, int64(3897), out.Order.Total)
	assert.Equal(t, model.OrderStatusPending, out.Order.Status)
	assert.Equal(t, now, out.Order.CreatedAt)

	//カートは空、注文はちょうど1件
	assert.Empty(t, cartRepo.lines)
	assert.Len(t, orderRepo.orders, 1)
}

// Test: deliveryは固定手数料500を足す
func TestCheckoutDeliverySurcharge(t *testing.T) {
	cartRepo := &fakeCartRepo{}
	orderRepo := &fakeOrderRepo{}
	catalogRepo := new(CatalogRepoMock)
	catalogRepo.On("FindByID", mock.Anything, int64(1)).Return(testPizza(), nil)

	cartUC := NewCartUsecase(cartRepo, catalogRepo)
	ctx := context.Background()
	_, _ = cartUC.Add(ctx, 1)
	_, _ = cartUC.ChangeQuantity(ctx, 1, 2)

	uc := NewCheckoutUsecase(cartRepo, orderRepo,
		&stubIDGen{ids: []string{"order-2"}}, &stubClock{now: time.Now()}, 500)

	out, err := uc.PlaceOrder(ctx, validCheckoutInput("delivery"))
	assert.NoError(t, err)

	assert.Equal(t, int64(3897), out.Subtotal)
	assert.Equal(t, int64(500), out.DeliveryFee)
	assert.Equal(t, int64(4397), out.Order.Total)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	uc := NewCheckoutUsecase(&fakeCartRepo{}, &fakeOrderRepo{},
		&stubIDGen{}, &stubClock{now: time.Now()}, 500)

	_, err := uc.PlaceOrder(context.Background(), validCheckoutInput("pickup"))
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCheckoutRequiredFields(t *testing.T) {
	cartRepo := &fakeCartRepo{lines: []model.CartLine{model.NewCartLine(testPizza())}}
	uc := NewCheckoutUsecase(cartRepo, &fakeOrderRepo{},
		&stubIDGen{}, &stubClock{now: time.Now()}, 500)

	in := validCheckoutInput("pickup")
	in.Name = "  "

	_, err := uc.PlaceOrder(context.Background(), in)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "name required", he.Message)
}

func TestCheckoutInvalidDeliveryOption(t *testing.T) {
	cartRepo := &fakeCartRepo{lines: []model.CartLine{model.NewCartLine(testPizza())}}
	uc := NewCheckoutUsecase(cartRepo, &fakeOrderRepo{},
		&stubIDGen{}, &stubClock{now: time.Now()}, 500)

	_, err := uc.PlaceOrder(context.Background(), validCheckoutInput("teleport"))
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

// Test: 注文明細はチェックアウト時点のスナップショット
func TestCheckoutSnapshotsCartLines(t *testing.T) {
	cartRepo := &fakeCartRepo{}
	orderRepo := &fakeOrderRepo{}
	catalogRepo := new(CatalogRepoMock)
	catalogRepo.On("FindByID", mock.Anything, int64(1)).Return(testPizza(), nil)
	catalogRepo.On("FindByID", mock.Anything, int64(2)).Return(testBread(), nil)

	cartUC := NewCartUsecase(cartRepo, catalogRepo)
	ctx := context.Background()
	_, _ = cartUC.Add(ctx, 1)
	_, _ = cartUC.Add(ctx, 2)

	uc := NewCheckoutUsecase(cartRepo, orderRepo,
		&stubIDGen{ids: []string{"order-3"}}, &stubClock{now: time.Now()}, 500)

	out, err := uc.PlaceOrder(ctx, validCheckoutInput("pickup"))
	assert.NoError(t, err)
	assert.Len(t, out.Order.Items, 2)

	//チェックアウト後にカートへ追加しても注文は変わらない
	_, _ = cartUC.Add(ctx, 1)
	assert.Len(t, orderRepo.orders[0].Items, 2)
}

func TestGetOrder(t *testing.T) {
	orderRepo := &fakeOrderRepo{orders: []model.Order{
		{
			ID:             "known",
			Items:          []model.CartLine{model.NewCartLine(testPizza())},
			DeliveryOption: model.DeliveryOptionDelivery,
			Total:          1799,
			Status:         model.OrderStatusPending,
		},
	}}

	uc := NewCheckoutUsecase(&fakeCartRepo{}, orderRepo,
		&stubIDGen{}, &stubClock{now: time.Now()}, 500)

	out, err := uc.GetOrder(context.Background(), "known")
	assert.NoError(t, err)
	assert.Equal(t, int64(500), out.DeliveryFee)
	assert.Equal(t, int64(1299), out.Subtotal)

	_, err = uc.GetOrder(context.Background(), "missing")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}
