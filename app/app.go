package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-marketing-api/config"
	"ai-marketing-api/db"
	"ai-marketing-api/handler"
	"ai-marketing-api/logger"
	"ai-marketing-api/repository"
	"ai-marketing-api/router"
	"ai-marketing-api/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Configuration loaded")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories
	userRepo := repository.NewUserRepository(database)
	tokenRepo := repository.NewTokenRepository(database)
	campaignRepo := repository.NewCampaignRepository(database)
	contentRepo := repository.NewContentRepository(database)
	calendarRepo := repository.NewCalendarRepository(database)
	chatRepo := repository.NewChatRepository(database)
	autoReplyRepo := repository.NewAutoReplyRepository(database)

	// Services
	authService := service.NewAuthService(userRepo, tokenRepo, service.AuthConfig{
		SecretKey:  config.AppConfig.JWT.SecretKey,
		AccessTTL:  time.Duration(config.AppConfig.JWT.AccessExpiryMins) * time.Minute,
		RefreshTTL: time.Duration(config.AppConfig.JWT.RefreshExpiryDays) * 24 * time.Hour,
	})
	aiService := service.NewAIService()
	gemini := service.NewGeminiClient(config.AppConfig.Gemini.APIKey, config.AppConfig.Gemini.Model)
	campaignService := service.NewCampaignService(campaignRepo, redisClient, aiService)
	contentService := service.NewContentService(contentRepo, aiService)
	calendarService := service.NewCalendarService(calendarRepo, aiService)
	chatService := service.NewChatService(chatRepo, aiService, gemini)
	autoReplyService := service.NewAutoReplyService(autoReplyRepo, aiService)
	analyticsService := service.NewAnalyticsService()

	// Handlers
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService, userRepo),
		Campaign:  handler.NewCampaignHandler(campaignService),
		Content:   handler.NewContentHandler(contentService),
		Calendar:  handler.NewCalendarHandler(calendarService),
		Chat:      handler.NewChatHandler(chatService),
		AutoReply: handler.NewAutoReplyHandler(autoReplyService),
		Analytics: handler.NewAnalyticsHandler(analyticsService, aiService),
	}

	r := router.NewRouter(handlers, authService, userRepo, config.AppConfig.Server.FrontendOrigin)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
