package handler

import (
	"net/http"

	"foodpreorder/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者ログインのHTTP
type AuthHandler struct {
	uc *usecase.AdminAuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AdminAuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.login)
}

func (h *AuthHandler) login(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Login(c.Request().Context(), usecase.AdminLoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
