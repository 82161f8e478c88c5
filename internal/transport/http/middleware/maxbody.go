package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "lexcase/internal/transport/http/response"
)

const MsgBodyTooLarge = "Request body too large"

// MaxBodyBytes limits how much of a request body handlers may read.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			resp.Abort(c, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
