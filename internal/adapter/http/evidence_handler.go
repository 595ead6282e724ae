package http

import (
	"errors"
	"net/http"

	domainEvidence "greentracker-backend/internal/domain/evidence"
	"greentracker-backend/internal/usecase/evidence"

	"github.com/labstack/echo/v4"
)

type EvidenceHandler struct{ uc *evidence.Usecase }

func NewEvidenceHandler(uc *evidence.Usecase) *EvidenceHandler { return &EvidenceHandler{uc: uc} }

func evidenceKey(c echo.Context) (domainEvidence.Key, error) {
	n, err := pathInt(c, "evidenceNumber")
	if err != nil {
		return domainEvidence.Key{}, err
	}
	return domainEvidence.Key{ActivityID: c.Param("activityId"), EvidenceNumber: n}, nil
}

// upload opens the multipart "file" part; the caller closes it.
func upload(c echo.Context) (evidence.Upload, func(), error) {
	fh, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return evidence.Upload{}, nil, evidence.ErrMissingFile
	}
	if err != nil {
		return evidence.Upload{}, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart body")
	}
	f, err := fh.Open()
	if err != nil {
		return evidence.Upload{}, nil, err
	}
	return evidence.Upload{Name: fh.Filename, Content: f}, func() { _ = f.Close() }, nil
}

// CreateFile handles image and document evidence sent as multipart/form-data.
func (h *EvidenceHandler) CreateFile(typ domainEvidence.Type) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorOf(c)
		if err != nil {
			return err
		}
		var in evidence.FileInput
		if err := bind(c, &in); err != nil {
			return err
		}
		file, done, err := upload(c)
		if err != nil {
			return err
		}
		defer done()
		dto, err := h.uc.CreateFile(c.Request().Context(), actor, c.Param("activityId"), typ, in, file)
		if err != nil {
			return err
		}
		return respond(c, http.StatusCreated, dto)
	}
}

func (h *EvidenceHandler) CreateLink(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	var in evidence.LinkInput
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.CreateLink(c.Request().Context(), actor, c.Param("activityId"), in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, dto)
}

func (h *EvidenceHandler) ReplaceFile(typ domainEvidence.Type) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorOf(c)
		if err != nil {
			return err
		}
		key, err := evidenceKey(c)
		if err != nil {
			return err
		}
		var in evidence.FileInput
		if err := bind(c, &in); err != nil {
			return err
		}
		file, done, err := upload(c)
		if err != nil {
			return err
		}
		defer done()
		dto, err := h.uc.ReplaceFile(c.Request().Context(), actor, key, typ, in, file)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, dto)
	}
}

func (h *EvidenceHandler) ReplaceLink(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}
	key, err := evidenceKey(c)
	if err != nil {
		return err
	}
	var in evidence.LinkInput
	if err := bind(c, &in); err != nil {
		return err
	}
	dto, err := h.uc.ReplaceLink(c.Request().Context(), actor, key, in)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, dto)
}

// Get reads one item; an empty typ accepts any variant.
func (h *EvidenceHandler) Get(typ domainEvidence.Type) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorOf(c)
		if err != nil {
			return err
		}
		key, err := evidenceKey(c)
		if err != nil {
			return err
		}
		dto, err := h.uc.Get(c.Request().Context(), actor, key, typ)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, dto)
	}
}

// List pages the evidence of an activity; on the generic route ?type narrows the variant.
func (h *EvidenceHandler) List(typ domainEvidence.Type) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorOf(c)
		if err != nil {
			return err
		}
		p, err := pagination(c)
		if err != nil {
			return err
		}
		want := typ
		if want == "" {
			want = domainEvidence.Type(c.QueryParam("type"))
			switch want {
			case "", domainEvidence.TypeImage, domainEvidence.TypeDocument, domainEvidence.TypeLink:
			default:
				return echo.NewHTTPError(http.StatusBadRequest, "type must be image, document or link")
			}
		}
		out, err := h.uc.List(c.Request().Context(), actor, c.Param("activityId"), want, p)
		if err != nil {
			return err
		}
		return respond(c, http.StatusOK, out)
	}
}

func (h *EvidenceHandler) Delete(typ domainEvidence.Type) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := actorOf(c)
		if err != nil {
			return err
		}
		key, err := evidenceKey(c)
		if err != nil {
			return err
		}
		if err := h.uc.Delete(c.Request().Context(), actor, key, typ); err != nil {
			return err
		}
		return respond[any](c, http.StatusOK, nil)
	}
}
