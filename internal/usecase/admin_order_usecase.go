package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"foodpreorder/internal/domain/model"
	repo "foodpreorder/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo   repo.OrderRepository
	catalogRepo repo.CatalogRepository
	idGen       IDGenerator
	clock       Clock
}

func NewAdminOrderUsecase(
	orderRepo repo.OrderRepository,
	catalogRepo repo.CatalogRepository,
	idGen IDGenerator,
	clock Clock,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

// 一覧の絞り込み。条件はANDで重ねる。
type OrderListFilter struct {
	Search string // 名前・メール・注文IDの部分一致（大文字小文字無視）
	Status string // ステータス完全一致
	Date   string // 作成日の暦日一致（YYYY-MM-DD、UTC）
}

type OrderListOutput struct {
	Orders []model.Order `json:"orders"`
}

// List は全件を読み、メモリ上でフィルタする（インデックスは無い）。
func (u *AdminOrderUsecase) List(ctx context.Context, f OrderListFilter) (OrderListOutput, error) {
	if f.Date != "" && !validDate(f.Date) {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	term := strings.ToLower(strings.TrimSpace(f.Search))

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if term != "" &&
			!strings.Contains(strings.ToLower(o.Customer.Name), term) &&
			!strings.Contains(strings.ToLower(o.Customer.Email), term) &&
			!strings.Contains(strings.ToLower(o.ID), term) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(o.Status) != f.Status {
			continue
		}
		if f.Date != "" && o.CreatedAt.UTC().Format("2006-01-02") != f.Date {
			continue
		}
		filtered = append(filtered, o)
	}

	return OrderListOutput{Orders: filtered}, nil
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// ステータス更新。値の妥当性は見ない（任意の文字列を保存する）。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID string, in AdminUpdateOrderStatusInput) error {
	if strings.TrimSpace(orderID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Status) == "" {
		return NewHTTPError(http.StatusBadRequest, "status required")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatus(in.Status))
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return nil
}

func (u *AdminOrderUsecase) Delete(ctx context.Context, orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.orderRepo.Delete(ctx, orderID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return nil
}

type AdminOrderItemInput struct {
	ItemID   int64
	Quantity int64
}

// 管理画面からの手動注文。カートを通らず、配達方法はpickup固定。
type AdminCreateOrderInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Status  string
	Items   []AdminOrderItemInput
}

func (u *AdminOrderUsecase) Create(ctx context.Context, in AdminCreateOrderInput) (model.Order, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	// 存在する商品だけ明細にする（未知のIDは読み飛ばす）
	lines := make([]model.CartLine, 0, len(in.Items))
	var subtotal int64 = 0
	for _, sel := range in.Items {
		item, err := u.catalogRepo.FindByID(ctx, sel.ItemID)
		if err == repo.ErrNotFound {
			continue
		}
		if err != nil {
			return model.Order{}, NewHTTPError(http.StatusInternalServerError, "store error")
		}

		qty := sel.Quantity
		if qty < 1 {
			qty = 1
		}

		line := model.NewCartLine(item)
		line.Quantity = qty
		lines = append(lines, line)
		subtotal += item.Price * qty
	}

	// 明細ゼロなら保存前に弾く
	if len(lines) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "at least one item required")
	}

	status := model.OrderStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = model.OrderStatusPending
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
		DeliveryOption: model.DeliveryOptionPickup,
		Total:          subtotal,
		Status:         status,
		CreatedAt:      u.clock.Now(),
	}

	if err := u.orderRepo.Append(ctx, order); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return order, nil
}

type ExportOutput struct {
	Filename string
	Data     []byte
}

// ExportCSV は全件（フィルタ無し）を9列のCSVにする。
func (u *AdminOrderUsecase) ExportCSV(ctx context.Context) (ExportOutput, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	if len(orders) == 0 {
		return ExportOutput{}, NewHTTPError(http.StatusBadRequest, "no orders to export")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Order ID", "Customer Name", "Email", "Phone", "Address",
		"Items", "Total", "Status", "Timestamp",
	}
	if err := w.Write(header); err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export error")
	}

	for _, o := range orders {
		parts := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			parts = append(parts, fmt.Sprintf("%dx %s (₱%s)", it.Quantity, it.Name, model.FormatPrice(it.Price)))
		}

		row := []string{
			o.ID,
			o.Customer.Name,
			o.Customer.Email,
			o.Customer.Phone,
			o.Customer.Address,
			strings.Join(parts, "; "),
			model.FormatPrice(o.Total),
			string(o.Status),
			o.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export error")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export error")
	}

	filename := "orders_export_" + u.clock.Now().UTC().Format("2006-01-02") + ".csv"
	return ExportOutput{Filename: filename, Data: buf.Bytes()}, nil
}

func validDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
