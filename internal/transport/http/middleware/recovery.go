package middleware

import (
	"fmt"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lexcase/internal/core/apperr"
	resp "lexcase/internal/transport/http/response"
)

// Recovery logs panics with their stack and answers with the 500 envelope.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(l, true, func(c *gin.Context, rec any) {
		resp.Fail(c, apperr.Internal(resp.MsgInternal, fmt.Errorf("panic: %v", rec)))
	})
}
