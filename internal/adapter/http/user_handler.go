package http

import (
	"net/http"

	"greentracker-backend/internal/usecase/admin"
	"greentracker-backend/internal/usecase/unit"

	"github.com/labstack/echo/v4"
)

type UnitHandler struct{ uc *unit.Usecase }

func NewUnitHandler(uc *unit.Usecase) *UnitHandler { return &UnitHandler{uc: uc} }

func (h *UnitHandler) Create(c echo.Context) error {
	var in unit.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *UnitHandler) List(c echo.Context) error {
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

func (h *UnitHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *UnitHandler) Replace(c echo.Context) error {
	var in unit.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *UnitHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond[any](c, http.StatusOK, nil)
}

func (h *UnitHandler) Me(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Me(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *UnitHandler) ReplaceMe(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in unit.MeInput
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.ReplaceMe(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

func (h *AdminHandler) Create(c echo.Context) error {
	var in admin.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *AdminHandler) List(c echo.Context) error {
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

func (h *AdminHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *AdminHandler) Replace(c echo.Context) error {
	var in admin.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond[any](c, http.StatusOK, nil)
}

func (h *AdminHandler) Me(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Me(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *AdminHandler) ReplaceMe(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in admin.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.ReplaceMe(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}
