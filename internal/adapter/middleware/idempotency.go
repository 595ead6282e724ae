package middleware

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"greentracker-backend/internal/usecase/apperr"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// HeaderIdempotencyKey is optional; requests without it pass straight through.
	HeaderIdempotencyKey = "Idempotency-Key"

	// How long we hold the "in-progress" lock before it must be refreshed by finishing the handler.
	provisionalLockTTL = 60 * time.Second
)

var (
	errInvalidKey   = apperr.Invalid("invalid Idempotency-Key format")
	errKeyReused    = apperr.Conflict("Idempotency-Key reused with different body")
	errInProgress   = apperr.Conflict("request is already in progress")
	errBodyRead     = apperr.Invalid("request body could not be read")
	errStoreOffline = echo.NewHTTPError(http.StatusServiceUnavailable, "idempotency store unavailable")
)

// ---- Data types ----
type idempEntry struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	CreatedAt   time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// Idempotency replays the stored response of a mutating request repeated with the same
// Idempotency-Key and body. The key is scoped by method, request path and caller, so it has to
// run after Auth. Server errors are not stored and release the key.
func Idempotency(rdb *redis.Client, ttl time.Duration, log logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			method := req.Method

			switch method {
			case http.MethodPost, http.MethodPut, http.MethodDelete:
			default:
				return next(c)
			}

			idemKey := strings.TrimSpace(req.Header.Get(HeaderIdempotencyKey))
			if idemKey == "" {
				return next(c)
			}
			if !validKey(idemKey) {
				return errInvalidKey
			}

			scope := "anonymous"
			if actor, ok := ActorFrom(c); ok {
				scope = actor.ID
			}

			// Buffer & hash body
			var body []byte
			if req.Body != nil {
				var err error
				if body, err = io.ReadAll(req.Body); err != nil {
					log.WithError(err).Warn("idempotency: body read failed")
					return errBodyRead
				}
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body))
			bhash := bodyHash(body)

			key := buildKey(method, req.URL.Path, scope, idemKey)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			ok, err := provisionalSet(ctx, rdb, key, idempEntry{InProgress: true, BodySHA256: bhash, CreatedAt: nowUTC()})
			if err != nil {
				log.WithError(err).WithField("key", key).Error("idempotency lock failed")
				return errStoreOffline
			}
			if !ok {
				cur, errLoad := loadEntry(ctx, rdb, key)
				if errLoad != nil && !errors.Is(errLoad, redis.Nil) {
					log.WithError(errLoad).WithField("key", key).Warn("idempotency entry unreadable")
				}
				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return errKeyReused
				}
				if !cur.InProgress && cur.Code != 0 {
					c.Response().Header().Set("Idempotent-Replayed", "true")
					contentType := cur.ContentType
					if contentType == "" {
						contentType = echo.MIMEApplicationJSONCharsetUTF8
					}
					return c.Blob(cur.Code, contentType, cur.Body)
				}
				return errInProgress
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			if rec.code >= http.StatusInternalServerError {
				if err := rdb.Del(context.Background(), key).Err(); err != nil {
					log.WithError(err).WithField("key", key).Warn("idempotency release failed")
				}
				return nil
			}
			final := idempEntry{
				Code:        rec.code,
				ContentType: rec.Header().Get(echo.HeaderContentType),
				Body:        rec.buf.Bytes(),
				BodySHA256:  bhash,
				CreatedAt:   nowUTC(),
			}
			if err := saveFinal(context.Background(), rdb, key, final, ttl); err != nil {
				log.WithError(err).WithField("key", key).Warn("idempotency save failed")
			}
			return nil
		}
	}
}
