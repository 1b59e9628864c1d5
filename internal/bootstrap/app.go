package bootstrap

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/resume"
	"resume-studio/internal/shared/config"
	"resume-studio/internal/shared/server"
	"resume-studio/internal/shared/storage/db"
	"resume-studio/internal/shared/storage/kv"
	filestore "resume-studio/internal/shared/storage/kv/file"
	pgstore "resume-studio/internal/shared/storage/kv/pg"
	redisstore "resume-studio/internal/shared/storage/kv/redis"
	"resume-studio/internal/shared/telemetry"
	"resume-studio/internal/theme"
)

// App holds the wired application dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	Backend       kv.Store
	ResumeStore   *resume.Store
	ThemeStore    *theme.Store
	ResumeHandler *resume.Handler
	ThemeHandler  *theme.Handler
}

// Build selects the persistence backend, rehydrates both stores, attaches
// their persistence subscribers, and wires the router. A backend that
// cannot be reached degrades to the file backend rather than failing
// startup; undurable in-memory storage is only used when asked for.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	backend, sqlDB := buildBackend(ctx, cfg)

	resumeStore := resume.NewStore(resume.Load(ctx, backend), cfg.HistoryLimit)
	resume.Attach(resumeStore, backend)

	themeStore := theme.NewStore(theme.Load(ctx, backend))
	theme.Attach(themeStore, backend)

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Backend:       backend,
		ResumeStore:   resumeStore,
		ThemeStore:    themeStore,
		ResumeHandler: resume.NewHandler(resumeStore),
		ThemeHandler:  theme.NewHandler(themeStore),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: app.ResumeHandler,
		ThemeHandler:  app.ThemeHandler,
	})

	return app, nil
}

func buildBackend(ctx context.Context, cfg config.Config) (kv.Store, *sql.DB) {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "postgres":
		conn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Warn("bootstrap.backend.fallback", map[string]any{
				"backend": "postgres",
				"error":   err.Error(),
			})
			return filestore.New(cfg.DataDir), nil
		}
		if err := db.RunMigrations(ctx, conn); err != nil {
			telemetry.Warn("bootstrap.backend.fallback", map[string]any{
				"backend": "postgres",
				"error":   err.Error(),
			})
			conn.Close()
			return filestore.New(cfg.DataDir), nil
		}
		return pgstore.New(conn), conn
	case "redis":
		store, err := redisstore.New(ctx, cfg.RedisURL)
		if err != nil {
			telemetry.Warn("bootstrap.backend.fallback", map[string]any{
				"backend": "redis",
				"error":   err.Error(),
			})
			return filestore.New(cfg.DataDir), nil
		}
		return store, nil
	default:
		return filestore.New(cfg.DataDir), nil
	}
}
