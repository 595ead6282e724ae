package http

import (
	"net/http"

	"greentracker-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

func (h *AuthHandler) Login(c echo.Context) error {
	var in auth.LoginInput
	if err := bind(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, out)
}
