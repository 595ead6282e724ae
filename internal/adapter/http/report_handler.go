package http

import (
	"net/http"

	"greentracker-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

// Criteria streams the CSV as an attachment, outside the JSON envelope.
func (h *ReportHandler) Criteria(c echo.Context) error {
	key, err := report.ParseCriteria(c.Param("criteria"))
	if err != nil {
		return err
	}
	rep, err := h.uc.Build(c.Request().Context(), key)
	if err != nil {
		return err
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+rep.Filename+`"`)
	res.WriteHeader(http.StatusOK)
	return rep.WriteCSV(res)
}
