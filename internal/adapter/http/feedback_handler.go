package http

import (
	"net/http"

	domainFeedback "greentracker-backend/internal/domain/feedback"
	"greentracker-backend/internal/usecase/feedback"

	"github.com/labstack/echo/v4"
)

type FeedbackHandler struct{ uc *feedback.Usecase }

func NewFeedbackHandler(uc *feedback.Usecase) *FeedbackHandler { return &FeedbackHandler{uc: uc} }

func feedbackKey(c echo.Context) (domainFeedback.Key, error) {
	ev, err := evidenceKey(c)
	if err != nil {
		return domainFeedback.Key{}, err
	}
	return domainFeedback.Key{
		ActivityID:     ev.ActivityID,
		EvidenceNumber: ev.EvidenceNumber,
		Feedback:       domainFeedback.Value(c.Param("feedback")),
	}, nil
}

func (h *FeedbackHandler) Create(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	ev, err := evidenceKey(c)
	if err != nil {
		return err
	}
	var in feedback.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), actor, ev, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *FeedbackHandler) List(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	ev, err := evidenceKey(c)
	if err != nil {
		return err
	}
	p, err := pagination(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), actor, ev, p)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, out)
}

func (h *FeedbackHandler) Get(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	key, err := feedbackKey(c)
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), actor, key)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *FeedbackHandler) Replace(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	key, err := feedbackKey(c)
	if err != nil {
		return err
	}
	var in feedback.Input
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.Replace(c.Request().Context(), actor, key, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

func (h *FeedbackHandler) Delete(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	key, err := feedbackKey(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), actor, key); err != nil {
		return err
	}
	return respond[any](c, http.StatusOK, nil)
}
