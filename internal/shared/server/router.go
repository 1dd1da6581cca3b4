package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raj6773/Resume/internal/builder"
	"github.com/Raj6773/Resume/internal/services/health"
	"github.com/Raj6773/Resume/internal/shared/config"
	"github.com/Raj6773/Resume/internal/shared/metrics"
	"github.com/Raj6773/Resume/internal/shared/server/middleware"
	"github.com/Raj6773/Resume/internal/shared/server/respond"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config         config.Config
	BuilderHandler *builder.Handler
	Health         *health.Service
	RateLimiter    *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroup,
			Limiter:  limiter,
			Rules: map[string]middleware.RateLimitRule{
				middleware.RenderRateLimitGroup: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			},
		}),
	)
	r.SetHTMLTemplate(builder.Templates())

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})

	if deps.BuilderHandler != nil {
		deps.BuilderHandler.RegisterPages(r)
		deps.BuilderHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitGroup puts the two PDF-producing endpoints in the render group.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/resume", "/api/v1/resumes":
		return middleware.RenderRateLimitGroup
	default:
		return ""
	}
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
