package http

import (
	"net/http"
	"strconv"
	"time"

	"greentracker-backend/internal/usecase/activity"

	"github.com/labstack/echo/v4"
)

type ActivityHandler struct{ uc *activity.Usecase }

func NewActivityHandler(uc *activity.Usecase) *ActivityHandler { return &ActivityHandler{uc: uc} }

func (h *ActivityHandler) Create(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in activity.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

// List filters by unitId, indicatorIndex, categoryName, from and to (RFC 3339).
func (h *ActivityHandler) List(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	p, err := pagination(c)
	if err != nil {
		return err
	}
	q, err := activityQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), actor, q, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, out)
}

func (h *ActivityHandler) Get(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *ActivityHandler) Replace(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in activity.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), actor, c.Param("id"), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *ActivityHandler) Delete(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return respond[any](c, http.StatusOK, nil)
}

func activityQuery(c echo.Context) (activity.Query, error) {
	q := activity.Query{
		UnitID:       c.QueryParam("unitId"),
		CategoryName: c.QueryParam("categoryName"),
	}
	if raw := c.QueryParam("indicatorIndex"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, "indicatorIndex must be an integer")
		}
		q.IndicatorIndex = &n
	}
	for name, dst := range map[string]**time.Time{"from": &q.From, "to": &q.To} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, echo.NewHTTPError(http.StatusBadRequest, name+" must be an RFC 3339 timestamp")
		}
		*dst = &t
	}
	return q, nil
}
