package http

import (
	"net/http"

	"greentracker-backend/internal/usecase/indicator"

	"github.com/labstack/echo/v4"
)

type IndicatorHandler struct{ uc *indicator.Usecase }

func NewIndicatorHandler(uc *indicator.Usecase) *IndicatorHandler { return &IndicatorHandler{uc: uc} }

func (h *IndicatorHandler) Create(c echo.Context) error {
	var in indicator.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *IndicatorHandler) List(c echo.Context) error {
	p, err := pagination(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, out)
}

func (h *IndicatorHandler) Get(c echo.Context) error {
	index, err := pathInt(c, "index")
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), index)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *IndicatorHandler) Replace(c echo.Context) error {
	index, err := pathInt(c, "index")
	if err != nil {
		return err
	}
	var in indicator.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), index, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *IndicatorHandler) Delete(c echo.Context) error {
	index, err := pathInt(c, "index")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), index); err != nil {
		return err
	}
	return respond[any](c, http.StatusOK, nil)
}
