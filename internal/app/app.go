package app

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/paysvc/server/cmd/server/docs" // swagger docs
	"github.com/paysvc/server/internal/module/payment"
	"github.com/paysvc/server/internal/module/paymentmethod"
	"github.com/paysvc/server/internal/shared/cache"
	"github.com/paysvc/server/internal/shared/config"
	"github.com/paysvc/server/internal/shared/database"
	"github.com/paysvc/server/internal/shared/logger"
	"github.com/paysvc/server/internal/shared/metrics"
	"github.com/paysvc/server/internal/shared/middleware"
)

// App represents the application.
type App struct {
	config    *config.Config
	db        *gorm.DB
	redis     redis.UniversalClient
	router    *gin.Engine
	logger    *logger.Logger
	zapLogger *zap.Logger
	metrics   *metrics.Metrics

	paymentHandler *payment.Handler
	methodHandler  *paymentmethod.Handler
}

// New creates a new application instance.
func New(cfg *config.Config) (*App, error) {
	// Initialize logger
	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	// Initialize zap logger for the module services
	zapLog, err := logger.NewZapLogger(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("init zap logger: %w", err)
	}

	app := &App{
		config:    cfg,
		logger:    log,
		zapLogger: zapLog,
		metrics:   metrics.New("paysvc"),
	}

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	app.db = db

	if err := db.AutoMigrate(&payment.Payment{}, &paymentmethod.PaymentMethod{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	// Initialize Redis (optional)
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			// Redis only backs the rate limiter, log and continue
			log.Warn("Redis connection failed", logger.Err(err))
		} else {
			app.redis = redisClient
		}
	}

	app.initModules()
	app.router = app.setupRouter()

	return app, nil
}

// Router returns the HTTP router.
func (a *App) Router() *gin.Engine {
	return a.router
}

// Stop releases application resources.
func (a *App) Stop() {
	if a.redis != nil {
		if err := cache.Close(a.redis); err != nil {
			a.logger.Warn("close redis", logger.Err(err))
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.logger.Warn("close database", logger.Err(err))
		}
	}
	_ = a.zapLogger.Sync()
}

// initModules initializes the payment and payment method modules.
func (a *App) initModules() {
	paymentRepo := payment.NewRepository(a.db)
	paymentService := payment.NewService(paymentRepo, a.metrics, a.zapLogger.Named("payment"))
	a.paymentHandler = payment.NewHandler(paymentService)

	methodRepo := paymentmethod.NewRepository(a.db)
	methodService := paymentmethod.NewService(methodRepo, a.metrics, a.zapLogger.Named("paymentmethod"))
	a.methodHandler = paymentmethod.NewHandler(methodService)
}

// setupRouter creates and configures the Gin router.
func (a *App) setupRouter() *gin.Engine {
	// Set Gin mode based on environment
	if a.config.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Apply global middleware
	r.Use(middleware.Recovery(a.logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(a.logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Metrics(a.metrics))
	if a.redis != nil {
		limiter := middleware.NewRateLimiter(a.redis)
		r.Use(middleware.RateLimit(limiter, middleware.DefaultRateLimitConfig()))
	}

	// Index page
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name": "Payments REST API Service",
			"docs": "/swagger/index.html",
		})
	})

	// Health check endpoint
	r.GET("/health", a.healthCheck)

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation endpoint
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// API routes
	api := r.Group("/api/v1")
	a.paymentHandler.RegisterRoutes(api)
	a.methodHandler.RegisterRoutes(api)

	return r
}

// healthCheck reports database and redis connectivity.
func (a *App) healthCheck(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"database": "ok"}

	sqlDB, err := a.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		checks["database"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	if a.redis != nil {
		checks["redis"] = "ok"
		if err := a.redis.Ping(c.Request.Context()).Err(); err != nil {
			checks["redis"] = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, checks)
}
