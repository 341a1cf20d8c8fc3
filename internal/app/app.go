package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cyber_academy_backend/internal/config"
	"cyber_academy_backend/internal/controller"
	"cyber_academy_backend/internal/repository"
	"cyber_academy_backend/internal/service"
	"cyber_academy_backend/internal/util"
	"cyber_academy_backend/pkg/configwatcher"
	"cyber_academy_backend/pkg/database"
	"cyber_academy_backend/pkg/logger"
	"cyber_academy_backend/pkg/monitoring"
	"cyber_academy_backend/pkg/security"
	"cyber_academy_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	allowList       *security.OriginAllowList
	configCallbacks []func(*config.Config)
	shutdownHooks   []func(context.Context) error
}

type repositories struct {
	user     *repository.UserRepository
	module   *repository.ModuleRepository
	activity *repository.ActivityRepository
	progress *repository.ProgressRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	module      *service.ModuleService
	catalog     *service.CatalogService
	activity    *service.ActivityService
	achievement *service.AchievementService
	dashboard   *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	module    *controller.ModuleController
	activity  *controller.ActivityController
	dashboard *controller.DashboardController
	catalog   *controller.CatalogController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		module:   repository.NewModuleRepository(db),
		activity: repository.NewActivityRepository(db),
		progress: repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage
	s.auth = service.NewAuthService(repos.user, cfg)
	s.module = service.NewModuleService(repos.module)
	s.catalog = service.NewCatalogService(repos.module, s.storage)
	s.achievement = service.NewAchievementService()
	s.activity = service.NewActivityService(db, repos.module, repos.activity, repos.progress, s.achievement)
	s.dashboard = service.NewDashboardService(repos.user, repos.module, repos.activity)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		module:    controller.NewModuleController(s.module),
		activity:  controller.NewActivityController(s.activity),
		dashboard: controller.NewDashboardController(s.dashboard),
		catalog:   controller.NewCatalogController(s.catalog),
		health:    controller.NewHealthController(db),
	}
}

func (a *App) rateLimiter(cfg *config.Config) security.Limiter {
	if cfg.Redis.Enabled && a.Redis != nil {
		return security.NewRedisLimiter(a.Redis, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	}
	return security.NewMemoryLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.allowList))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.rateLimiter(cfg)))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New wires repositories, services and routes over an already opened
// store. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		allowList: security.NewOriginAllowList(cfg.CORS.AllowedOrigins),
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db)
	if err != nil {
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()
	util.RegisterValidators()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(middlewareChain()...)
	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)
	app.Router = router

	app.RegisterConfigCallback(logger.ApplyConfig)
	app.RegisterConfigCallback(func(c *config.Config) {
		app.allowList.Set(c.CORS.AllowedOrigins)
	})

	return app, nil
}

// NewApp opens every backing service named in cfg and builds the App.
// Startup failures are fatal.
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app, err := New(cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.shutdownHooks = append(app.shutdownHooks, tp.Shutdown)
	}

	if err := app.seedCatalog(context.Background()); err != nil {
		logger.Log.Error("Failed to seed module catalog", zap.Error(err))
	}

	return app
}

// seedCatalog imports the -seed source unconditionally, or the configured
// seed source when the catalog is still empty.
func (a *App) seedCatalog(ctx context.Context) error {
	if a.Config.SeedSource != "" {
		result, err := a.services.catalog.Import(ctx, a.Config.SeedSource)
		if err != nil {
			return err
		}
		logger.Log.Info("Seed import finished",
			zap.String("source", a.Config.SeedSource),
			zap.Strings("imported", result.Imported),
			zap.Strings("skipped", result.Skipped),
		)
		return nil
	}
	return a.services.catalog.SeedIfEmpty(ctx, a.Config.Catalog.SeedSource)
}

func (a *App) watchConfig(ctx context.Context) {
	if !a.Config.Server.WatchConfig || a.Config.File == "" {
		return
	}
	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.File, func(c *config.Config) {
			for _, cb := range a.configCallbacks {
				cb(c)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.String("file", filepath.Base(a.Config.File)), zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:         ":" + a.Config.Server.Port,
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
	}

	watchCtx, stopWatching := context.WithCancel(context.Background())
	defer stopWatching()
	a.watchConfig(watchCtx)

	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	for _, hook := range a.shutdownHooks {
		if err := hook(ctx); err != nil {
			logger.Log.Error("Shutdown hook failed", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
	logger.Log.Sync()
}
