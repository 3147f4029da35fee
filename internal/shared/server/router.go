package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthplan-backend/internal/recommendations"
	"healthplan-backend/internal/services/health"
	"healthplan-backend/internal/shared/config"
	"healthplan-backend/internal/shared/metrics"
	"healthplan-backend/internal/shared/server/middleware"
	"healthplan-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config          config.Config
	Recommendations *recommendations.Handler
	Health          *health.Service
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
		middleware.Logging(),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})

	if deps.Recommendations != nil {
		limiter := deps.Limiter
		if limiter == nil {
			limiter = middleware.NewRateLimiter(nil)
		}
		deps.Recommendations.RegisterRoutes(api,
			middleware.PlanRateLimit(deps.Config.RateLimitRPS, deps.Config.RateLimitBurst, limiter))
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
