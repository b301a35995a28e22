package usecase

import (
	"context"
	"net/http"

	"foodpreorder/internal/domain/model"
	repo "foodpreorder/internal/repository"
)

// CartUsecase は /cart の業務ロジックです。
// カートは1つだけ（単一利用者のデモ）。明細の配列を読み、書き換え、全体を保存する。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	catalogRepo repo.CatalogRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, catalogRepo repo.CatalogRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

// CartResponse のSubtotalとCountは保存せず毎回計算する。
type CartResponse struct {
	Items    []model.CartLine `json:"items"`
	Subtotal int64            `json:"subtotal"`
	Count    int64            `json:"count"`
}

func buildCartResponse(lines []model.CartLine) CartResponse {
	var subtotal int64 = 0
	var count int64 = 0
	for _, l := range lines {
		subtotal += l.Price * l.Quantity
		count += l.Quantity
	}
	return CartResponse{Items: lines, Subtotal: subtotal, Count: count}
}

func (u *CartUsecase) Get(ctx context.Context) (CartResponse, error) {
	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return buildCartResponse(lines), nil
}

// Add はカートに1個追加（同一商品は数量+1）。
// 存在しない商品は何もしないで現状を返す。
func (u *CartUsecase) Add(ctx context.Context, itemID int64) (CartResponse, error) {
	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	item, err := u.catalogRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return buildCartResponse(lines), nil
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	found := false
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, model.NewCartLine(item))
	}

	if err := u.cartRepo.Save(ctx, lines); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return buildCartResponse(lines), nil
}

// ChangeQuantity は数量をdeltaだけ増減する。
// 結果が0以下なら明細ごと削除。明細が無ければ何もしない。
func (u *CartUsecase) ChangeQuantity(ctx context.Context, itemID int64, delta int64) (CartResponse, error) {
	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	idx := -1
	for i := range lines {
		if lines[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return buildCartResponse(lines), nil
	}

	lines[idx].Quantity += delta
	if lines[idx].Quantity <= 0 {
		lines = append(lines[:idx], lines[idx+1:]...)
	}

	if err := u.cartRepo.Save(ctx, lines); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return buildCartResponse(lines), nil
}

// 明細削除（あれば無条件で消す）
func (u *CartUsecase) Remove(ctx context.Context, itemID int64) (CartResponse, error) {
	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	remaining := make([]model.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ItemID != itemID {
			remaining = append(remaining, l)
		}
	}

	if err := u.cartRepo.Save(ctx, remaining); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return buildCartResponse(remaining), nil
}

// Clear はチェックアウト成功後に使う。
func (u *CartUsecase) Clear(ctx context.Context) (CartResponse, error) {
	if err := u.cartRepo.Save(ctx, []model.CartLine{}); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return buildCartResponse([]model.CartLine{}), nil
}
