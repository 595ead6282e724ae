package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"greentracker-backend/internal/adapter/middleware"
	"greentracker-backend/internal/domain/page"
	domainUser "greentracker-backend/internal/domain/user"
	"greentracker-backend/internal/usecase/apperr"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type Response[T any] struct {
	StatusCode int `json:"statusCode"`
	Data       T   `json:"data"`
}

func respond[T any](c echo.Context, code int, data T) error {
	return c.JSON(code, Response[T]{StatusCode: code, Data: data})
}

var errNoActor = apperr.Unauthenticated("not authenticated")

// ErrorHandler renders every error leaving a handler or middleware as an ErrorResponse.
// Errors without a service kind become a generic 500 and are logged with their cause.
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		body := errorBody(err)
		if body.StatusCode >= http.StatusInternalServerError {
			log.WithError(err).WithFields(logrus.Fields{
				"method": c.Request().Method,
				"route":  c.Path(),
			}).Error("request failed")
		}
		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(body.StatusCode)
		} else {
			werr = c.JSON(body.StatusCode, body)
		}
		if werr != nil {
			log.WithError(werr).Warn("error response not written")
		}
	}
}

func errorBody(err error) ErrorResponse {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ErrorResponse{StatusCode: http.StatusBadRequest, Error: ve.Error(), Details: ve.Details}
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return ErrorResponse{StatusCode: he.Code, Error: fmt.Sprint(he.Message)}
	}
	code := statusOf(apperr.KindOf(err))
	if code == http.StatusInternalServerError {
		return ErrorResponse{StatusCode: code, Error: "internal server error"}
	}
	return ErrorResponse{StatusCode: code, Error: apperr.Message(err)}
}

func statusOf(k apperr.Kind) int {
	switch k {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindInvalid:
		return http.StatusBadRequest
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// bind decodes the request into dst and runs its validate tags.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(dst); err != nil {
		return &ValidationError{Details: ToFieldErrors(err)}
	}
	return nil
}

type pageQuery struct {
	PageIndex    int `query:"pageIndex" validate:"gte=0"`
	ItemsPerPage int `query:"itemsPerPage" validate:"gte=0"`
}

// pagination reads pageIndex / itemsPerPage; missing values take the defaults, oversize pages are clamped.
func pagination(c echo.Context) (page.Pagination, error) {
	var q pageQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return page.Pagination{}, echo.NewHTTPError(http.StatusBadRequest, "pageIndex and itemsPerPage must be integers")
	}
	if err := c.Validate(&q); err != nil {
		return page.Pagination{}, &ValidationError{Details: ToFieldErrors(err)}
	}
	return page.Pagination{PageIndex: q.PageIndex, ItemsPerPage: q.ItemsPerPage}.Normalize(), nil
}

func pathInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}

func actorOf(c echo.Context) (domainUser.Actor, error) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		return domainUser.Actor{}, errNoActor
	}
	return a, nil
}
