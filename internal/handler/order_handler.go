package handler

import (
	"net/http"

	"foodpreorder/internal/receipt"
	"foodpreorder/internal/usecase"

	"github.com/labstack/echo/v4"
)

// チェックアウトと注文確認のHTTP
type OrderHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewOrderHandler(uc *usecase.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CheckoutRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DeliveryOption string `json:"delivery_option"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.checkout)
	e.GET("/orders/:id", h.detail)
	e.GET("/orders/:id/receipt", h.receiptPDF)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		DeliveryOption: req.DeliveryOption,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// レシートPDFを返す（印刷はクライアント側）。
func (h *OrderHandler) receiptPDF(c echo.Context) error {
	out, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	pdf, err := receipt.Build(out.Order, out.Subtotal, out.DeliveryFee)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "receipt error"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="receipt_`+out.Order.ID+`.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
