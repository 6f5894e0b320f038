package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/revanth-raj24/AlmirahShop/controllers"
	"github.com/revanth-raj24/AlmirahShop/database"
	"github.com/revanth-raj24/AlmirahShop/kafka"
	"github.com/revanth-raj24/AlmirahShop/middleware"
	aws_pkg "github.com/revanth-raj24/AlmirahShop/pkg/aws"
	"github.com/revanth-raj24/AlmirahShop/repository"
	"github.com/revanth-raj24/AlmirahShop/routes"
	"github.com/revanth-raj24/AlmirahShop/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := LoadConfig()

	if err := database.Connect(); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close() //nolint:errcheck

	// Redis cart cache (optional)
	var cartCache *repository.CartCache
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Warn("Invalid REDIS_URL, cart cache disabled", zap.Error(err))
		} else {
			ttl := 15 * time.Minute
			if d, err := time.ParseDuration(cfg.CartCacheTTL); err == nil {
				ttl = d
			}
			cartCache = repository.NewCartCache(redis.NewClient(opts), ttl)
		}
	}

	// Kafka producer (optional)
	var producer kafka.ProducerAPI
	if cfg.KafkaBrokers != "" {
		p := kafka.NewProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer p.Close() //nolint:errcheck
		producer = p
	} else {
		logger.Warn("KAFKA_BROKERS unset, order events disabled")
	}

	// AWS clients (optional)
	var snsClient aws_pkg.SNSPublisher
	var awsCfgPtr *sdkaws.Config
	if cfg.AWSEnabled {
		awsCfg, awsErr := aws_pkg.LoadAWSConfig(context.Background())
		if awsErr != nil {
			logger.Warn("AWS config unavailable, SNS and uploads disabled", zap.Error(awsErr))
		} else {
			snsClient = aws_pkg.NewTopicClient(awsCfg)
			awsCfgPtr = &awsCfg
		}
	}

	// Repositories
	userRepo := repository.NewGormUserRepository(database.DB)
	productRepo := repository.NewGormProductRepository(database.DB)
	cartRepo := repository.NewGormCartRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	addressRepo := repository.NewGormAddressRepository(database.DB)
	wishlistRepo := repository.NewGormWishlistRepository(database.DB)
	reviewRepo := repository.NewGormReviewRepository(database.DB)
	analyticsRepo := repository.NewGormAnalyticsRepository(database.DB)
	notificationRepo := repository.NewGormNotificationRepository(database.DB)

	// Services
	tokenService := services.NewJWTTokenService(cfg.JWTSecret)
	var emailSender services.EmailSender
	if emailCfg, err := services.LoadEmailConfig(); err != nil {
		logger.Warn("SMTP not configured, verification codes will be logged", zap.Error(err))
		emailSender = services.NewLogEmailSender(logger)
	} else {
		emailSender = services.NewSMTPEmailSender(emailCfg)
	}

	events := services.NewEventPublisher(producer, snsClient, cfg.SNSTopicARN, notificationRepo, logger)
	authService := services.NewAuthService(database.DB, userRepo, tokenService, emailSender, logger)
	productService := services.NewProductService(productRepo, awsCfgPtr, cfg.S3Bucket, logger)
	cartService := services.NewCartService(cartRepo, productRepo, cartCache, logger)
	orderService := services.NewOrderService(database.DB, orderRepo, addressRepo, cartCache, events, logger)
	fulfillmentService := services.NewFulfillmentService(orderRepo, events, logger)
	returnService := services.NewReturnService(orderRepo, events, logger)
	adminService := services.NewAdminService(userRepo, analyticsRepo, logger)
	addressService := services.NewAddressService(addressRepo, logger)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, productRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, logger)

	if err := services.BootstrapAdmin(context.Background(), userRepo, cfg.AdminEmail, cfg.AdminPassword, logger); err != nil {
		logger.Fatal("Failed to bootstrap admin account", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit())

	// Global request-logging middleware
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
		)
	})

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "almirahshop"})
	})

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Product:  controllers.NewProductController(productService),
		Cart:     controllers.NewCartController(cartService),
		Order:    controllers.NewOrderController(orderService, returnService),
		Seller:   controllers.NewSellerController(fulfillmentService, returnService, orderService, productService),
		Admin:    controllers.NewAdminController(adminService, productService, orderService, fulfillmentService, returnService),
		Address:  controllers.NewAddressController(addressService),
		Wishlist: controllers.NewWishlistController(wishlistService),
		Review:   controllers.NewReviewController(reviewService),

		Notification: controllers.NewNotificationController(notificationService),
	}, tokenService, userRepo)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("AlmirahShop started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
