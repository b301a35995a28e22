package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"foodpreorder/internal/domain/model"
	repo "foodpreorder/internal/repository"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// CheckoutUsecase はカート＋フォーム入力から注文を1件作る。
type CheckoutUsecase struct {
	cartRepo    repo.CartRepository
	orderRepo   repo.OrderRepository
	idGen       IDGenerator
	clock       Clock
	deliveryFee int64
}

func NewCheckoutUsecase(
	cartRepo repo.CartRepository,
	orderRepo repo.OrderRepository,
	idGen IDGenerator,
	clock Clock,
	deliveryFee int64,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		idGen:       idGen,
		clock:       clock,
		deliveryFee: deliveryFee,
	}
}

// チェックアウトフォームの入力
type PlaceOrderInput struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	DeliveryOption string
}

// 確認画面向けの出力。DeliveryFeeは表示用（Totalに含まれている）。
type CheckoutOutput struct {
	Order       model.Order `json:"order"`
	Subtotal    int64       `json:"subtotal"`
	DeliveryFee int64       `json:"delivery_fee"`
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (CheckoutOutput, error) {
	// フォームの必須項目チェック（ブラウザのrequired相当）
	if strings.TrimSpace(in.Name) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "email required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "phone required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "address required")
	}

	opt := model.DeliveryOption(in.DeliveryOption)
	switch opt {
	case model.DeliveryOptionPickup, model.DeliveryOptionDelivery:
	default:
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid delivery option")
	}

	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	if len(lines) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	// 合計は作成時に一度だけ計算する
	var subtotal int64 = 0
	for _, l := range lines {
		subtotal += l.Price * l.Quantity
	}

	var fee int64 = 0
	if opt == model.DeliveryOptionDelivery {
		fee = u.deliveryFee
	}

	order := model.Order{
		ID: u.idGen.NewID(),
		Customer: model.Customer{
			Name:    in.Name,
			Email:   in.Email,
			Phone:   in.Phone,
			Address: in.Address,
		},
		Items:          lines,
		DeliveryOption: opt,
		Total:          subtotal + fee,
		Status:         model.OrderStatusPending,
		CreatedAt:      u.clock.Now(),
	}

	if err := u.orderRepo.Append(ctx, order); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	// 注文が保存できたらカートを空にする
	if err := u.cartRepo.Save(ctx, []model.CartLine{}); err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return CheckoutOutput{Order: order, Subtotal: subtotal, DeliveryFee: fee}, nil
}

// 確認・レシート表示用の1件取得。
func (u *CheckoutUsecase) GetOrder(ctx context.Context, orderID string) (CheckoutOutput, error) {
	if strings.TrimSpace(orderID) == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	for _, o := range orders {
		if o.ID == orderID {
			var fee int64 = 0
			if o.DeliveryOption == model.DeliveryOptionDelivery {
				fee = u.deliveryFee
			}
			return CheckoutOutput{Order: o, Subtotal: o.Total - fee, DeliveryFee: fee}, nil
		}
	}
	return CheckoutOutput{}, NewHTTPError(http.StatusNotFound, "not found")
}
