package main

import (
	"context"
	"time"

	"pos_terminal/internal/config"
	"pos_terminal/internal/database"
	"pos_terminal/internal/handlers"
	"pos_terminal/internal/middleware"
	"pos_terminal/internal/migrations"
	"pos_terminal/internal/period"
	"pos_terminal/internal/redis"
	"pos_terminal/internal/repository"
	"pos_terminal/internal/services"
	"pos_terminal/pkg/money"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("unknown timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}
	clock := period.NewClock(loc)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, cfg.GormLogLevel, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := migrations.RunMigrations(context.Background(), db, false, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Carts live in Redis when configured, otherwise in process memory
	cartStore := services.NewMemoryCartStore()
	if cfg.RedisURL != "" {
		redisClient, err := redis.Initialize(cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cartStore = services.NewRedisCartStore(redisClient, time.Duration(cfg.CartTTL)*time.Second)
		logger.Info("using redis cart store", zap.Int("ttl_seconds", cfg.CartTTL))
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	paymentTypeRepo := repository.NewPaymentTypeRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(catalogRepo)
	paymentTypeService := services.NewPaymentTypeService(paymentTypeRepo, logger)
	cartService := services.NewCartService(cartStore, catalogService)
	transactionService := services.NewTransactionService(transactionRepo, paymentTypeRepo, clock, logger)
	checkoutService := services.NewCheckoutService(cartStore, transactionService, logger)
	dashboardService := services.NewDashboardService(dashboardRepo, clock, cfg.TopItemsLimit)
	pinService := services.NewPinService(settingRepo, logger)
	dataService := services.NewDataService(maintenanceRepo, logger)

	// Initialize handlers
	formatter := money.NewFormatter(cfg.CurrencySymbol)
	apiHandler := handlers.NewAPIHandler(catalogService, paymentTypeService, cartService, checkoutService, transactionService, formatter, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, paymentTypeService, pinService, dataService, formatter, logger)

	// Setup routes
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AddAllowHeaders(middleware.PinHeader)
	router.Use(cors.New(corsConfig))

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	router.Use(metrics.Handler())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(router, apiHandler, dashboardHandler, middleware.DashboardPin(pinService, logger))

	// Start server
	logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("timezone", loc.String()))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	build := zap.NewProduction
	if cfg.IsDevelopment() {
		build = zap.NewDevelopment
	}

	logger, err := build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
