// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/angelamos/frontdesk/internal/admin"
	"github.com/angelamos/frontdesk/internal/appointment"
	"github.com/angelamos/frontdesk/internal/audit"
	"github.com/angelamos/frontdesk/internal/auth"
	"github.com/angelamos/frontdesk/internal/billing"
	"github.com/angelamos/frontdesk/internal/config"
	"github.com/angelamos/frontdesk/internal/core"
	"github.com/angelamos/frontdesk/internal/health"
	"github.com/angelamos/frontdesk/internal/member"
	"github.com/angelamos/frontdesk/internal/message"
	"github.com/angelamos/frontdesk/internal/middleware"
	"github.com/angelamos/frontdesk/internal/notification"
	"github.com/angelamos/frontdesk/internal/server"
	"github.com/angelamos/frontdesk/internal/store"
	"github.com/angelamos/frontdesk/internal/teacher"
	"github.com/angelamos/frontdesk/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
		"store_backend", cfg.Store.Backend,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	var (
		kv  store.KV
		db  *core.Database
		rds *core.Redis
	)

	switch cfg.Store.Backend {
	case config.StoreBackendMemory:
		kv = store.NewMemoryKV()
	case config.StoreBackendFile:
		fileKV, fileErr := store.NewFileKV(cfg.Store.Dir)
		if fileErr != nil {
			return fileErr
		}
		kv = fileKV
		logger.Info("file store ready", "dir", cfg.Store.Dir)
	case config.StoreBackendRedis:
		rds, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		kv = store.NewRedisKV(rds.Client)
		logger.Info("redis store connected", "pool_size", cfg.Redis.PoolSize)
	case config.StoreBackendPostgres:
		db, err = core.NewDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		pgKV := store.NewPostgresKV(db.DB)
		if err = pgKV.EnsureSchema(ctx); err != nil {
			return err
		}
		kv = pgKV
		logger.Info("postgres store connected",
			"max_open_conns", cfg.Database.MaxOpenConns,
		)
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	// Redis also backs session revocation and rate limiting when available,
	// independent of the chosen store backend.
	if rds == nil && cfg.Redis.URL != "" {
		rds, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)
	}

	st := store.New(kv, cfg.Store.Namespace)
	auditLog := audit.NewLogger(st, logger)

	if err = ensureDevKeys(cfg, logger); err != nil {
		return err
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("JWT manager initialized",
		"algorithm", "ES256",
		"key_id", jwtManager.GetKeyID(),
	)

	userRepo := user.NewRepository(st)
	userSvc := user.NewService(userRepo, auditLog)
	userHandler := user.NewHandler(userSvc)

	if err = userSvc.EnsureSeed(ctx); err != nil {
		return err
	}

	teacherRepo := teacher.NewRepository(st)
	teacherSvc := teacher.NewService(teacherRepo, userSvc, auditLog, logger)
	teacherHandler := teacher.NewHandler(teacherSvc)

	if err = teacherSvc.EnsureSeed(ctx); err != nil {
		return err
	}

	redisClient := redisClientOrNil(rds)

	authSvc := auth.NewService(jwtManager, userSvc, auditLog, redisClient)
	authHandler := auth.NewHandler(authSvc)

	memberSvc := member.NewService(member.NewRepository(st), auditLog)
	memberHandler := member.NewHandler(memberSvc)

	billingSvc := billing.NewService(billing.NewRepository(st), auditLog)
	billingHandler := billing.NewHandler(billingSvc)

	notificationSvc := notification.NewService(
		notification.NewRepository(st),
		auditLog,
	)
	notificationHandler := notification.NewHandler(notificationSvc)

	appointmentSvc := appointment.NewService(
		appointment.NewRepository(st),
		auditLog,
	)
	appointmentHandler := appointment.NewHandler(appointmentSvc)

	messageSvc := message.NewService(message.NewRepository(st), auditLog)
	messageHandler := message.NewHandler(messageSvc)

	var redisChecker health.Checker
	if rds != nil {
		redisChecker = rds
	}
	healthHandler := health.NewHandler(st, redisChecker)

	adminCfg := admin.HandlerConfig{
		StorePing: st.Ping,
		AuditLog:  auditLog,
	}
	if db != nil {
		adminCfg.DBStats = db.Stats
	}
	if rds != nil {
		adminCfg.RedisStats = rds.PoolStats
		adminCfg.RedisPing = rds.Ping
	}
	adminHandler := admin.NewHandler(adminCfg)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Get("/.well-known/jwks.json", jwtManager.GetJWKSHandler())

	authenticator := middleware.Authenticator(authSvc)
	adminOnly := middleware.RequireAdmin
	staffOnly := middleware.RequireRole("admin", "user")

	router.Route("/v1", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(authSvc))
		r.Use(middleware.RoleRateLimiter(redisClient, middleware.DefaultRoleLimits))

		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterAdminRoutes(r, authenticator, adminOnly)
		memberHandler.RegisterRoutes(r, authenticator, staffOnly)
		billingHandler.RegisterRoutes(r, authenticator, staffOnly)
		notificationHandler.RegisterRoutes(r, authenticator, staffOnly)
		teacherHandler.RegisterRoutes(r, authenticator, adminOnly)
		appointmentHandler.RegisterRoutes(r, authenticator, adminOnly)
		messageHandler.RegisterRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if rds != nil {
		if err := rds.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("database close error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

// ensureDevKeys generates a signing keypair on first run in development so
// a fresh checkout starts without manual key provisioning.
func ensureDevKeys(cfg *config.Config, logger *slog.Logger) error {
	if !cfg.IsDevelopment() {
		return nil
	}

	if _, err := os.Stat(cfg.JWT.PrivateKeyPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.JWT.PrivateKeyPath), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}

	logger.Info("generating development signing keypair",
		"private_key", cfg.JWT.PrivateKeyPath,
	)

	return auth.GenerateKeyPair(cfg.JWT.PrivateKeyPath, cfg.JWT.PublicKeyPath)
}

func redisClientOrNil(rds *core.Redis) *redis.Client {
	if rds == nil {
		return nil
	}
	return rds.Client
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
