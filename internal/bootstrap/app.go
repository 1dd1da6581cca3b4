package bootstrap

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Raj6773/Resume/internal/builder"
	"github.com/Raj6773/Resume/internal/services/health"
	"github.com/Raj6773/Resume/internal/shared/config"
	"github.com/Raj6773/Resume/internal/shared/server"
	"github.com/Raj6773/Resume/internal/shared/server/middleware"
	"github.com/Raj6773/Resume/internal/shared/telemetry"
	"github.com/Raj6773/Resume/resume/render"
	"github.com/Raj6773/Resume/resume/service"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	BuilderService *service.Builder
	BuilderHandler *builder.Handler
	HealthService  *health.Service
	RateLimiter    *middleware.RateLimiter
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	telemetry.SetLevel(cfg.LogLevel)

	opts := render.DefaultOptions()
	opts.Compress = cfg.PDFCompress

	app := &App{
		Config:         cfg,
		BuilderService: service.NewBuilder(opts),
		HealthService:  health.NewService(),
		RateLimiter:    middleware.NewRateLimiter(nil),
	}
	app.BuilderHandler = builder.NewHandler(app.BuilderService, cfg.MaxUploadBytes)
	if app.BuilderHandler == nil || app.BuilderService == nil {
		return nil, errors.New("failed to initialize handlers")
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         app.Config,
		BuilderHandler: app.BuilderHandler,
		Health:         app.HealthService,
		RateLimiter:    app.RateLimiter,
	})

	return app, nil
}
