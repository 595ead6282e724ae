package http

import (
	"net/http"

	domainCategory "greentracker-backend/internal/domain/category"
	"greentracker-backend/internal/usecase/category"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct{ uc *category.Usecase }

func NewCategoryHandler(uc *category.Usecase) *CategoryHandler { return &CategoryHandler{uc: uc} }

func categoryKey(c echo.Context) (domainCategory.Key, error) {
	index, err := pathInt(c, "index")
	if err != nil {
		return domainCategory.Key{}, err
	}
	return domainCategory.Key{IndicatorIndex: index, Name: c.Param("name")}, nil
}

func (h *CategoryHandler) Create(c echo.Context) error {
	index, err := pathInt(c, "index")
	if err != nil {
		return err
	}
	var in category.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), index, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *CategoryHandler) List(c echo.Context) error {
	index, err := pathInt(c, "index")
	if err != nil {
		return err
	}
	p, err := pagination(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), index, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, out)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	key, err := categoryKey(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), key)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *CategoryHandler) Replace(c echo.Context) error {
	key, err := categoryKey(c)
	if err != nil {
		return err
	}
	var in category.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), key, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	key, err := categoryKey(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), key); err != nil {
		return err
	}
	return respond[any](c, http.StatusOK, nil)
}
