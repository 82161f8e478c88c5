// Package response writes the JSON envelope every endpoint answers with:
// {"success": bool, "data": ..., "error": {"message": ...}}.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexcase/internal/core/apperr"
)

// MsgInternal is shown for unclassified failures in production.
const MsgInternal = "Internal server error"

type ErrorBody struct {
	Message string              `json:"message"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type boundary struct {
	log        *zap.Logger
	production bool
}

const ctxBoundary = "response.boundary"

// Boundary installs the logger and posture Fail uses. Without it Fail
// behaves as in production and logs nothing.
func Boundary(l *zap.Logger, production bool) gin.HandlerFunc {
	b := &boundary{log: l, production: production}
	return func(c *gin.Context) {
		c.Set(ctxBoundary, b)
		c.Next()
	}
}

func boundaryOf(c *gin.Context) *boundary {
	if v, ok := c.Get(ctxBoundary); ok {
		if b, ok := v.(*boundary); ok {
			return b
		}
	}
	return &boundary{log: zap.NewNop(), production: true}
}

func OK(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

// Abort writes a failure envelope and stops the handler chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Envelope{Error: &ErrorBody{Message: msg}})
}

// Fail maps err to its status and writes the failure envelope. 5xx errors
// are logged in full; the client sees the real cause only outside production.
func Fail(c *gin.Context, err error) {
	b := boundaryOf(c)
	status := apperr.StatusOf(err)
	body := &ErrorBody{Message: err.Error()}

	if ae, ok := apperr.As(err); ok {
		body.Details = ae.Details
	}
	if status >= http.StatusInternalServerError {
		b.log.Error("request failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.String("rid", c.GetString(RequestIDKey)),
		)
		body.Message = internalMessage(err, b.production)
	}
	c.AbortWithStatusJSON(status, Envelope{Error: body})
}

func internalMessage(err error, production bool) string {
	ae, classified := apperr.As(err)
	if production {
		if classified && ae.Msg != "" {
			return ae.Msg
		}
		return MsgInternal
	}
	if classified && ae.Err != nil {
		return ae.Err.Error()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgInternal
}

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "X-Request-ID"

// IsBodyTooLarge reports whether err came from an http.MaxBytesReader limit.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
