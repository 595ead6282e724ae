package http

import (
	"net/http"

	"greentracker-backend/internal/usecase/uploadperiod"

	"github.com/labstack/echo/v4"
)

type UploadPeriodHandler struct{ uc *uploadperiod.Usecase }

func NewUploadPeriodHandler(uc *uploadperiod.Usecase) *UploadPeriodHandler {
	return &UploadPeriodHandler{uc: uc}
}

func (h *UploadPeriodHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *UploadPeriodHandler) Replace(c echo.Context) error {
	var in uploadperiod.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}
