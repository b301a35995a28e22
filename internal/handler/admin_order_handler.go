package handler

import (
	"net/http"

	"foodpreorder/internal/config"
	"foodpreorder/internal/middleware"
	"foodpreorder/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc *usecase.AdminOrderUsecase
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc}
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type AdminOrderItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int64 `json:"quantity"`
}

type AdminCreateOrderRequest struct {
	Name    string                  `json:"name"`
	Email   string                  `json:"email"`
	Phone   string                  `json:"phone"`
	Address string                  `json:"address"`
	Status  string                  `json:"status"`
	Items   []AdminOrderItemRequest `json:"items"`
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	admin := e.Group("/admin")
	admin.Use(middleware.AuthJWT(cfg))
	admin.Use(middleware.AdminRoleGuard())

	admin.GET("/orders", h.list)
	admin.POST("/orders", h.create)
	admin.GET("/orders/export", h.export)
	admin.PUT("/orders/:id/status", h.updateStatus)
	admin.DELETE("/orders/:id", h.delete)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), usecase.OrderListFilter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
		Date:   c.QueryParam("date"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateStatus(
		c.Request().Context(),
		c.Param("id"),
		usecase.AdminUpdateOrderStatusInput{Status: req.Status},
	); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "updated"})
}

func (h *AdminOrderHandler) delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "deleted"})
}

// 管理画面からの手動注文（カートを通らない）
func (h *AdminOrderHandler) create(c echo.Context) error {
	var req AdminCreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	items := make([]usecase.AdminOrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.AdminOrderItemInput{
			ItemID:   it.ItemID,
			Quantity: it.Quantity,
		})
	}

	order, err := h.uc.Create(c.Request().Context(), usecase.AdminCreateOrderInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  req.Status,
		Items:   items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, order)
}

// 全件をCSVでダウンロードさせる
func (h *AdminOrderHandler) export(c echo.Context) error {
	out, err := h.uc.ExportCSV(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+out.Filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", out.Data)
}
