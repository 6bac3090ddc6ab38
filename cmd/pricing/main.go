// PricingService 主程序
// 功能：提供奇异期权蒙特卡洛估值服务，包括亚式与障碍期权定价、收敛性扫描与历史查询
// 架构：基于 DDD + Gin + MySQL + Redis + Kafka
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/exoticpricing/internal/exotic/application"
	"github.com/wyfcoding/exoticpricing/internal/exotic/domain"
	"github.com/wyfcoding/exoticpricing/internal/exotic/infrastructure/client"
	"github.com/wyfcoding/exoticpricing/internal/exotic/infrastructure/persistence/mysql"
	redisrepo "github.com/wyfcoding/exoticpricing/internal/exotic/infrastructure/persistence/redis"
	"github.com/wyfcoding/exoticpricing/internal/exotic/infrastructure/publisher"
	httphandler "github.com/wyfcoding/exoticpricing/internal/exotic/interfaces/http"
	"github.com/wyfcoding/exoticpricing/pkg/cache"
	"github.com/wyfcoding/exoticpricing/pkg/config"
	"github.com/wyfcoding/exoticpricing/pkg/db"
	"github.com/wyfcoding/exoticpricing/pkg/logger"
	"github.com/wyfcoding/exoticpricing/pkg/metrics"
	"github.com/wyfcoding/exoticpricing/pkg/middleware"
	"github.com/wyfcoding/exoticpricing/pkg/mq"
	"github.com/wyfcoding/exoticpricing/pkg/ratelimit"
)

func main() {
	// 1. 加载配置
	configPath := "configs/pricing/config.toml"
	if v := os.Getenv("PRICING_CONFIG"); v != "" {
		configPath = v
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	loggerCfg := logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}
	if err := logger.Init(loggerCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting PricingService",
		"service", cfg.ServiceName,
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	// 3. 初始化数据库
	dbCfg := db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}
	database, err := db.Init(dbCfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize database", "error", err)
	}
	defer database.Close()

	// 4. 初始化 Redis
	redisCfg := cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ConnTimeout:  cfg.Redis.ConnTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	}
	redisCache, err := cache.New(redisCfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize Redis", "error", err)
	}
	defer redisCache.Close()

	// 5. 初始化限流器
	rateLimiter := ratelimit.NewRedisRateLimiter(redisCache.GetClient())

	// 6. 初始化 Kafka 生产者
	producer, err := mq.NewProducer(mq.KafkaConfig{
		Brokers:      cfg.Kafka.Brokers,
		MaxRetries:   cfg.Kafka.MaxRetries,
		RetryBackoff: cfg.Kafka.RetryBackoff,
	})
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize Kafka producer", "error", err)
	}
	defer producer.Close()
	resultPublisher := publisher.NewKafkaResultPublisher(producer, cfg.Kafka.Topic)

	// 7. 初始化仓储与缓存
	valuationRepo := mysql.NewValuationRepository(database.DB)
	valuationCache := redisrepo.NewValuationCache(redisCache.GetClient())

	// 8. 初始化市场数据客户端
	var marketData domain.MarketDataClient
	if cfg.MarketData.BaseURL != "" {
		marketData = client.NewHTTPMarketDataClient(cfg.MarketData.BaseURL, time.Duration(cfg.MarketData.Timeout)*time.Second)
	} else {
		marketData = client.NewMockMarketDataClient(time.Now().UnixNano())
	}

	// 9. 初始化指标
	metricsInstance := metrics.New(cfg.ServiceName)
	if err := metricsInstance.Register(); err != nil {
		logger.Fatal(ctx, "Failed to register metrics", "error", err)
	}
	if cfg.Metrics.Enabled {
		if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Fatal(ctx, "Failed to start metrics HTTP server", "error", err)
		}
	}

	// 10. 初始化应用服务
	pricingService := application.NewPricingService(
		valuationRepo,
		valuationCache,
		resultPublisher,
		marketData,
		metricsInstance,
		cfg.MarketData.LookbackDays,
	)

	// 11. 创建并启动 HTTP 服务器
	httpServer := createHTTPServer(cfg, pricingService, rateLimiter, metricsInstance)
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		logger.Info(ctx, "Starting HTTP server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "HTTP server error", "error", err)
		}
	}()

	// 12. 优雅关停
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info(ctx, "Shutting down PricingService")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown error", "error", err)
	}

	logger.Info(ctx, "PricingService stopped")
}

// createHTTPServer 创建 HTTP 服务器
func createHTTPServer(cfg *config.Config, pricingService *application.PricingService, rateLimiter ratelimit.RateLimiter, m *metrics.Metrics) *http.Server {
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 添加中间件
	router.Use(middleware.GinLoggingMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinMetricsMiddleware(m))
	router.Use(middleware.RateLimitMiddleware(rateLimiter, cfg.RateLimit))

	// 注册路由
	handler := httphandler.NewHandler(pricingService)
	handler.RegisterRoutes(router.Group("/api/v1"))

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"timestamp": time.Now().Unix(),
		})
	})

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}
}
