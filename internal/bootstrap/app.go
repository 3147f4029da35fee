package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"healthplan-backend/internal/recommendations"
	"healthplan-backend/internal/services/health"
	"healthplan-backend/internal/shared/config"
	"healthplan-backend/internal/shared/server"
	"healthplan-backend/internal/shared/server/middleware"
	"healthplan-backend/internal/shared/storage/db"
	"healthplan-backend/internal/shared/telemetry"
	"healthplan-backend/internal/textgen"
	"healthplan-backend/internal/textgen/openai"
)

// App holds shared dependencies for the API process.
type App struct {
	Config                 config.Config
	Router                 *gin.Engine
	DB                     *sql.DB
	TextGen                textgen.Client
	RecommendationsRepo    recommendations.Repo
	FeedbackRepo           recommendations.FeedbackRepo
	RecommendationsService *recommendations.Service
	RecommendationsHandler *recommendations.Handler
	Health                 *health.Service

	closers []io.Closer
}

// Build connects storage, selects the text generation chain and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, DB: sqlDB}
	if sqlDB != nil {
		app.closers = append(app.closers, sqlDB)
	}

	app.TextGen, err = buildTextGen(ctx, cfg, app)
	if err != nil {
		_ = app.Close()
		return nil, err
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		Recommendations: app.RecommendationsHandler,
		Health:          app.Health,
		Limiter:         middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// Close releases the database and cache connections.
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_store", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			_ = sqlDB.Close()
			sqlDB = nil
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_store", map[string]any{"reason": "database unavailable", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildTextGen layers cache over retry over the provider. Without a provider
// the rules engine serves every request.
func buildTextGen(ctx context.Context, cfg config.Config, app *App) (textgen.Client, error) {
	if !cfg.TextGenEnabled() {
		return textgen.Disabled{}, nil
	}

	provider, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.OpenAITimeout)
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.textgen_disabled", map[string]any{"error": err.Error()})
			return textgen.Disabled{}, nil
		}
		return nil, err
	}
	client := textgen.NewRetrying(provider)

	if cfg.RedisAddr == "" {
		return client, nil
	}
	cache, err := textgen.NewRedisCache(ctx, cfg.RedisAddr)
	if err != nil {
		telemetry.Warn("bootstrap.textgen_cache_disabled", map[string]any{"addr": cfg.RedisAddr, "error": err.Error()})
		return client, nil
	}
	app.closers = append(app.closers, cache)
	return textgen.NewCached(client, cache, cfg.TextGenCacheTTL), nil
}

func buildServices(app *App) {
	if app.DB != nil {
		app.RecommendationsRepo = &recommendations.PGRepo{DB: app.DB}
		app.FeedbackRepo = &recommendations.PGFeedbackRepo{DB: app.DB}
	} else {
		app.RecommendationsRepo = recommendations.NewMemoryRepo()
		app.FeedbackRepo = recommendations.NewMemoryFeedbackRepo()
	}

	app.RecommendationsService = &recommendations.Service{
		Repo:     app.RecommendationsRepo,
		Feedback: app.FeedbackRepo,
		TextGen:  app.TextGen,
	}
	app.RecommendationsHandler = recommendations.NewHandler(app.RecommendationsService)

	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}
	app.Health = health.NewService(pinger, !textgen.IsDisabled(app.TextGen))
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
