package server

import (
	"foodpreorder/internal/config"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Catalog.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.AdminOrder.RegisterRoutes(e, cfg)
}
