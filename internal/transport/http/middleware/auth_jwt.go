package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lexcase/internal/core/apperr"
	"lexcase/internal/core/auth"
	"lexcase/internal/domain"
	resp "lexcase/internal/transport/http/response"
)

const ctxIdentity = "identity"

type TokenVerifier interface {
	Parse(token string) (*auth.Claims, error)
}

// IdentityLoader re-reads the user a token names; nil means gone.
type IdentityLoader interface {
	LoadIdentity(ctx context.Context, id string) (*domain.Identity, error)
}

// Authenticate verifies the bearer token and attaches the caller's current
// identity, as stored, to the context.
func Authenticate(tokens TokenVerifier, ids IdentityLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		raw := strings.SplitN(ah, " ", 3)[1]
		claims, err := tokens.Parse(raw)
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		id, err := ids.LoadIdentity(c.Request.Context(), claims.UserID)
		if err != nil {
			resp.Fail(c, apperr.Internal("Server error during authentication", err))
			return
		}
		if id == nil {
			resp.Abort(c, http.StatusUnauthorized, "User not found")
			return
		}
		c.Set(ctxIdentity, id)
		c.Next()
	}
}

// Authorize lets the request through only when the caller holds one of roles.
func Authorize(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			resp.Abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		for _, r := range roles {
			if id.Role == r {
				c.Next()
				return
			}
		}
		resp.Abort(c, http.StatusForbidden, "Insufficient permissions")
	}
}

func IdentityFrom(c *gin.Context) (*domain.Identity, bool) {
	v, ok := c.Get(ctxIdentity)
	if !ok {
		return nil, false
	}
	id, ok := v.(*domain.Identity)
	return id, ok && id != nil
}
