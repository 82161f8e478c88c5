package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"lexcase/internal/core/apperr"
	"lexcase/internal/core/config"
	"lexcase/internal/core/server"
	mdw "lexcase/internal/transport/http/middleware"
	resp "lexcase/internal/transport/http/response"
)

type Deps struct {
	Log        *zap.Logger
	Production bool
	Limits     config.Limits
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func NewAPIEngine(d Deps, modules ...APIModule) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	r := server.NewRouter(d.Production)

	chain := []gin.HandlerFunc{
		mdw.RequestID(),
		resp.Boundary(d.Log, d.Production),
		server.CORS(),
		mdw.SecurityHeaders(),
	}
	if l := d.Limits; l.RPS > 0 {
		chain = append(chain, mdw.RateLimit(rate.Limit(l.RPS), max(1, l.Burst)))
	}
	if l := d.Limits; l.PerIPRPS > 0 {
		chain = append(chain, mdw.RateLimitPerIP(rate.Limit(l.PerIPRPS), max(1, l.PerIPBurst)))
	}
	if d.Limits.Concurrency > 0 {
		chain = append(chain, mdw.ConcurrencyLimit(d.Limits.Concurrency))
	}
	if d.Limits.MaxBodyBytes > 0 {
		chain = append(chain, mdw.MaxBodyBytes(d.Limits.MaxBodyBytes))
	}
	if d.Limits.RequestTimeoutSec > 0 {
		chain = append(chain, mdw.Timeout(time.Duration(d.Limits.RequestTimeoutSec)*time.Second))
	}
	chain = append(chain, mdw.Recovery(d.Log), mdw.Metrics(), mdw.AccessLog(d.Log))
	r.Use(chain...)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthStatus{Status: "ok", Timestamp: time.Now().UTC().Format(isoMillis)})
	})
	r.GET("/metrics", mdw.MetricsHandler())

	mountAPI(r.Group("/api"), modules)

	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c, apperr.NotFound("Route not found: "+c.Request.Method+" "+c.Request.URL.RequestURI()))
	})
	return r
}
