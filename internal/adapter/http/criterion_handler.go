package http

import (
	"net/http"

	domainCriterion "greentracker-backend/internal/domain/criterion"
	"greentracker-backend/internal/usecase/criterion"

	"github.com/labstack/echo/v4"
)

type CriterionHandler struct{ uc *criterion.Usecase }

func NewCriterionHandler(uc *criterion.Usecase) *CriterionHandler { return &CriterionHandler{uc: uc} }

func criterionKey(c echo.Context) (domainCriterion.Key, error) {
	index, err := pathInt(c, "index")
	if err != nil {
		return domainCriterion.Key{}, err
	}
	sub, err := pathInt(c, "subindex")
	if err != nil {
		return domainCriterion.Key{}, err
	}
	return domainCriterion.Key{IndicatorIndex: index, Subindex: sub}, nil
}

func (h *CriterionHandler) Create(c echo.Context) error {
	index, err := pathInt(c, "index")
	if err != nil {
		return err
	}
	var in criterion.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), index, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

// List accepts ?category=<name> to narrow to one category's criteria.
func (h *CriterionHandler) List(c echo.Context) error {
	index, err := pathInt(c, "index")
	if err != nil {
		return err
	}
	p, err := pagination(c)
	if err != nil {
		return err
	}
	var categoryName *string
	if c.QueryParams().Has("category") {
		name := c.QueryParam("category")
		categoryName = &name
	}
	out, err := h.uc.List(c.Request().Context(), index, categoryName, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, out)
}

func (h *CriterionHandler) Get(c echo.Context) error {
	key, err := criterionKey(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), key)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *CriterionHandler) Replace(c echo.Context) error {
	key, err := criterionKey(c)
	if err != nil {
		return err
	}
	var in criterion.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), key, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *CriterionHandler) Delete(c echo.Context) error {
	key, err := criterionKey(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), key); err != nil {
		return err
	}
	return respond[any](c, http.StatusOK, nil)
}
