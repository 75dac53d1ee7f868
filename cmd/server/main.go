package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	archiveapp "github.com/carbyfah/backend/internal/application/archive"
	catalogapp "github.com/carbyfah/backend/internal/application/catalog"
	identityapp "github.com/carbyfah/backend/internal/application/identity"
	orgapp "github.com/carbyfah/backend/internal/application/organization"
	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/carbyfah/backend/internal/infrastructure/auth"
	"github.com/carbyfah/backend/internal/infrastructure/cache"
	"github.com/carbyfah/backend/internal/infrastructure/config"
	"github.com/carbyfah/backend/internal/infrastructure/logger"
	"github.com/carbyfah/backend/internal/infrastructure/persistence"
	"github.com/carbyfah/backend/internal/infrastructure/printing"
	"github.com/carbyfah/backend/internal/infrastructure/scheduler"
	"github.com/carbyfah/backend/internal/infrastructure/storage"
	"github.com/carbyfah/backend/internal/infrastructure/telemetry"
	"github.com/carbyfah/backend/internal/interfaces/http/handler"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/carbyfah/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is stamped at build time via -ldflags
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting CARBYFAH backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	// Telemetry pipeline: traces, metrics, logs, continuous profiling.
	// Every provider degrades to a no-op when telemetry is disabled.
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer shutdownWithTimeout(tracerProvider.Shutdown, log, "tracer provider")

	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	defer shutdownWithTimeout(meterProvider.Shutdown, log, "meter provider")

	logsProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize logs provider", zap.Error(err))
	}
	defer shutdownWithTimeout(logsProvider.Shutdown, log, "logs provider")

	if otelCore := logsProvider.ZapCore(cfg.Telemetry.ServiceName); otelCore != nil {
		log = log.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelCore)
		}))
	}

	profiler, err := telemetry.NewProfiler(cfg.Telemetry, log)
	if err != nil {
		log.Warn("Failed to start profiler, continuing without it", zap.Error(err))
	} else {
		defer func() {
			if err := profiler.Stop(); err != nil {
				log.Error("Error stopping profiler", zap.Error(err))
			}
		}()
	}

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.DB.Use(otelgorm.NewPlugin()); err != nil {
			log.Warn("Failed to enable database tracing", zap.Error(err))
		}
	}
	log.Info("Database connected")

	// Redis backs the organigram cache and the token blacklist. When it
	// is unreachable the server still starts with in-process fallbacks;
	// logout revocation then only holds within a single instance.
	var (
		organigramCache orgapp.OrganigramCache
		tokenBlacklist  auth.TokenBlacklist
	)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory cache and blacklist", zap.Error(err))
		organigramCache = cache.NewInMemoryOrganigramCache(0)
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		defer func() {
			_ = redisClient.Close()
		}()
		organigramCache = cache.NewRedisOrganigramCache(redisClient, 0, log)
		tokenBlacklist = auth.NewRedisTokenBlacklist(redisClient)
		log.Info("Redis connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	}

	// Object storage for digital files. Without credentials the stub
	// keeps uploads in memory, which is enough for local development.
	var objectStorage archiveapp.ObjectStorage
	if cfg.Storage.AccessKey == "" && cfg.Storage.Endpoint == "" {
		log.Warn("Object storage not configured, using in-memory stub")
		objectStorage = storage.NewStubObjectStorage()
	} else {
		s3Storage, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(ctx); err != nil {
			log.Warn("Failed to ensure storage bucket", zap.Error(err))
		}
		objectStorage = s3Storage
	}

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	structureTypeRepo := persistence.NewGormStructureTypeRepository(db.DB)
	gradeRepo := persistence.NewGormGradeRepository(db.DB)
	serviceStatusRepo := persistence.NewGormServiceStatusRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	positionRepo := persistence.NewGormPositionRepository(db.DB)
	functionalRoleRepo := persistence.NewGormFunctionalRoleRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)
	roleAssignmentRepo := persistence.NewGormRoleAssignmentRepository(db.DB)
	careerRepo := persistence.NewGormCareerHistoryRepository(db.DB)
	documentRepo := persistence.NewGormDocumentRepository(db.DB)
	organigramReader := persistence.NewGormOrganigramReader(db.DB)

	// PDF export renders the organigram through headless Chrome
	printer := printing.NewChromedpPrinter(printing.ChromedpPrinterConfig{
		NoSandbox: cfg.App.Env != "development",
		Logger:    log,
	})
	defer printer.Close()

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, tokenBlacklist, identityapp.DefaultAuthServiceConfig(), log)
	userService := identityapp.NewUserService(userRepo, log)

	structureTypeService := catalogapp.NewStructureTypeService(structureTypeRepo, log)
	gradeService := catalogapp.NewGradeService(gradeRepo, log)
	serviceStatusService := catalogapp.NewServiceStatusService(serviceStatusRepo, log)

	unitService := orgapp.NewUnitService(unitRepo, positionRepo, organigramCache, log)
	positionService := orgapp.NewPositionService(positionRepo, unitRepo, log)
	functionalRoleService := orgapp.NewFunctionalRoleService(functionalRoleRepo, log)
	organigramService := orgapp.NewOrganigramService(organigramReader, organigramCache, printer, log)

	profileService := personnelapp.NewProfileService(profileRepo, gradeRepo, serviceStatusRepo, log)
	assignmentService := personnelapp.NewAssignmentService(
		assignmentRepo, profileRepo, careerRepo, unitRepo, positionRepo,
		organigramCache, cfg.Alerts.WindowDays, log,
	)
	roleService := personnelapp.NewRoleService(
		roleAssignmentRepo, profileRepo, functionalRoleRepo, cfg.Alerts.WindowDays, log,
	)
	alertService := personnelapp.NewAlertService(assignmentRepo, roleAssignmentRepo, cfg.Alerts.WindowDays, log)
	careerService := personnelapp.NewCareerService(careerRepo, profileRepo, log)
	dashboardService := personnelapp.NewDashboardService(profileRepo, assignmentRepo, roleAssignmentRepo, alertService, log)
	documentService := archiveapp.NewDocumentService(documentRepo, profileRepo, objectStorage, cfg.Storage.PresignExpiry, log)

	// Periodic sweep that surfaces soon-to-expire assignments and role
	// grants in the logs; expiration itself is derived on read.
	if cfg.Scheduler.Enabled {
		sweeper, err := scheduler.NewExpirySweeper(cfg.Scheduler, alertService, log)
		if err != nil {
			log.Fatal("Failed to create expiry sweeper", zap.Error(err))
		}
		if err := sweeper.Start(ctx); err != nil {
			log.Fatal("Failed to start expiry sweeper", zap.Error(err))
		}
		defer func() {
			if err := sweeper.Stop(context.Background()); err != nil {
				log.Error("Error stopping expiry sweeper", zap.Error(err))
			}
		}()
		log.Info("Expiry sweeper started",
			zap.String("schedule", cfg.Scheduler.SweepCronSchedule),
		)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	if cfg.HTTP.AuthRateLimitEnabled {
		// Brute-force protection: a much tighter budget on credential
		// endpoints than on the rest of the API.
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		engine.Use(middleware.RateLimitPrefix(authLimiter, "/api/v1/auth/"))
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = tokenBlacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuth(jwtConfig))

	r := router.New(engine)
	r.Register(
		handler.NewSystemHandler(db.DB, cfg.App.Name, version),
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewCatalogHandler(structureTypeService, gradeService, serviceStatusService),
		handler.NewUnitHandler(unitService),
		handler.NewPositionHandler(positionService),
		handler.NewFunctionalRoleHandler(functionalRoleService),
		handler.NewOrganigramHandler(organigramService),
		handler.NewProfileHandler(profileService),
		handler.NewAssignmentHandler(assignmentService),
		handler.NewRoleAssignmentHandler(roleService),
		handler.NewAlertHandler(alertService),
		handler.NewCareerHandler(careerService),
		handler.NewDashboardHandler(dashboardService),
		handler.NewDocumentHandler(documentService),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func shutdownWithTimeout(shutdown func(context.Context) error, log *zap.Logger, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Error("Error shutting down "+name, zap.Error(err))
	}
}
