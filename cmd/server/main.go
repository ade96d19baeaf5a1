package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accorcia/internal/auth"
	"accorcia/internal/config"
	"accorcia/internal/encoder"
	"accorcia/internal/handler"
	"accorcia/internal/live"
	"accorcia/internal/mq"
	"accorcia/internal/repository"
	"accorcia/internal/service"
	"accorcia/pkg/middleware"
	"accorcia/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title accorcia API
// @version 1.0
// @description URL shortener with per-link visit statistics and live notifications

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	sqlRepo, err := repository.NewSQLRepository(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer sqlRepo.Close()

	var redisRepo *repository.RedisRepository
	if cfg.Cache.Enabled || cfg.Notify.Backend == config.NotifyRedis {
		redisRepo = repository.NewRedisRepository(&cfg.Database.Redis, cfg.Cache.LinkTTL)
		defer redisRepo.Close()
	}

	var linkCache service.LinkCache
	if cfg.Cache.Enabled {
		linkCache = redisRepo
	}

	// Live notifications
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := live.NewHub()
	publisher, closeNotify := setupNotify(ctx, cfg, hub, redisRepo)
	defer closeNotify()

	// Initialize services
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authSvc := service.NewAuthService(sqlRepo, util.NewPasswordHasher(cfg.Auth.BcryptCost), tokens, cfg.Auth.InviteCode)
	linkSvc := service.NewLinkService(sqlRepo, sqlRepo, linkCache, encoder.NewCodeGenerator(), cfg.Server.BaseURL)
	redirectSvc := service.NewRedirectService(sqlRepo, sqlRepo, linkCache, publisher)
	statsSvc := service.NewStatsService(sqlRepo, sqlRepo)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.Server.DashboardURL))

	router.LoadHTMLGlob("templates/*")

	authHandler := handler.NewAuthHandler(authSvc)
	linkHandler := handler.NewLinkHandler(linkSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	redirectHandler := handler.NewRedirectHandler(redirectSvc, cfg.Server.NotFoundPath, cfg.Server.DashboardURL)
	liveHandler := handler.NewLiveHandler(hub, linkSvc, cfg.Server.DashboardURL)

	// API routes
	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("", middleware.Authenticate(tokens), middleware.RequireAuth(), authHandler.LoadUser)
		secured.POST("/change-password", authHandler.ChangePassword)
		secured.POST("/urls", linkHandler.Create)
		secured.GET("/urls", linkHandler.List)
		secured.PUT("/urls/:code", linkHandler.Edit)
		secured.DELETE("/urls/:code", linkHandler.Delete)
		secured.GET("/urls/:code/stats", statsHandler.Recent)
		secured.POST("/urls/:code/stats/range", statsHandler.Range)
		secured.POST("/urls/accountstats", statsHandler.Account)
	}

	// Live channel, authenticated by a query parameter
	router.GET("/ws",
		middleware.AuthenticateQuery(tokens, "token"),
		middleware.RequireAuth(),
		authHandler.LoadUser,
		liveHandler.Serve,
	)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if err := sqlRepo.Ping(c.Request.Context()); err != nil {
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Public pages and short codes
	router.GET("/", redirectHandler.Home)
	router.GET("/404", redirectHandler.NotFound)
	router.GET("/:shortCode", redirectHandler.Redirect)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// configPath returns the configuration file, overridable with ACCORCIA_CONFIG
func configPath() string {
	if p := os.Getenv("ACCORCIA_CONFIG"); p != "" {
		return p
	}
	return "configs/config.yaml"
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == gin.ReleaseMode {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// setupNotify wires the configured visit notification backend into the hub.
// The returned function releases the backend.
func setupNotify(ctx context.Context, cfg *config.Config, hub *live.Hub, redisRepo *repository.RedisRepository) (service.VisitPublisher, func()) {
	switch cfg.Notify.Backend {
	case config.NotifyRedis:
		bridge := live.NewRedisBridge(hub, redisRepo.SubscribeVisits(ctx))
		go bridge.Run(ctx)
		return redisRepo, func() { bridge.Close() }

	case config.NotifyRocketMQ:
		producer, consumer, err := setupRocketMQ(&cfg.RocketMQ, hub)
		if err != nil {
			log.Warn().Err(err).Msg("RocketMQ unavailable, notifying local subscribers only")
			return hub, func() {}
		}
		return producer, func() {
			consumer.Close()
			producer.Close()
		}
	}

	return hub, func() {}
}

// setupRocketMQ starts the visit producer and the broadcasting consumer feeding the hub
func setupRocketMQ(cfg *config.RocketMQConfig, hub *live.Hub) (mq.ProducerInterface, mq.ConsumerInterface, error) {
	producer, err := mq.NewProducer(cfg)
	if err != nil {
		return nil, nil, err
	}

	consumer, err := mq.NewConsumer(cfg, hub.HandleVisitMessage)
	if err != nil {
		producer.Close()
		return nil, nil, err
	}

	if err := consumer.Subscribe(); err != nil {
		consumer.Close()
		producer.Close()
		return nil, nil, err
	}

	return producer, consumer, nil
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
