package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"greentracker-backend/internal/usecase/apperr"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", apperr.NotFound("indicator not found"), http.StatusNotFound, "indicator not found"},
		{"wrapped conflict", fmt.Errorf("create: %w", apperr.Conflict("indicator already exists")), http.StatusConflict, "indicator already exists"},
		{"invalid", apperr.Invalid("upload period is closed"), http.StatusBadRequest, "upload period is closed"},
		{"forbidden", apperr.Forbidden("not the owner"), http.StatusForbidden, "not the owner"},
		{"unauthenticated", apperr.Unauthenticated("invalid token"), http.StatusUnauthorized, "invalid token"},
		{"echo http error", echo.NewHTTPError(http.StatusBadRequest, "invalid body"), http.StatusBadRequest, "invalid body"},
		{"unknown", errors.New("dial tcp: refused"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			ErrorHandler(logger)(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("status: got %d want %d", rec.Code, tc.code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.StatusCode != tc.code || body.Error != tc.message {
				t.Fatalf("body mismatch: %+v", body)
			}
			logged := len(hook.AllEntries()) > 0
			if want := tc.code == http.StatusInternalServerError; logged != want {
				t.Fatalf("logged=%v want %v", logged, want)
			}
			if logged && hook.LastEntry().Level != logrus.ErrorLevel {
				t.Fatalf("expected error level, got %v", hook.LastEntry().Level)
			}
		})
	}
}

func TestErrorHandler_ValidationDetails(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/x", nil), rec)

	ErrorHandler(logger)(&ValidationError{Details: []FieldError{{Field: "name", Message: "is required"}}}, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d", rec.Code)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Error != "validation failed" || !containsFieldMsg(body.Details, "name", "is required") {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestPagination(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	cases := []struct {
		query       string
		index, size int
		bad         bool
	}{
		{"", 1, 10, false},
		{"?pageIndex=3&itemsPerPage=25", 3, 25, false},
		{"?itemsPerPage=1000", 1, 100, false},
		{"?pageIndex=abc", 0, 0, true},
		{"?pageIndex=-1", 0, 0, true},
	}
	for _, tc := range cases {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x"+tc.query, nil), httptest.NewRecorder())
		p, err := pagination(c)
		if tc.bad {
			if err == nil {
				t.Fatalf("%q: expected error", tc.query)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.query, err)
		}
		if p.PageIndex != tc.index || p.ItemsPerPage != tc.size {
			t.Fatalf("%q: got %+v", tc.query, p)
		}
	}
}
