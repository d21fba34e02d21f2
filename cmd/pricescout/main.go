package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pricescout/internal/api"
	"pricescout/internal/api/handlers"
	"pricescout/internal/llm"
	"pricescout/internal/repository"
	"pricescout/internal/service"
	"pricescout/pkg/auth"
	"pricescout/pkg/config"
	"pricescout/pkg/logger"
	"pricescout/pkg/postgres"

	"go.uber.org/zap"
)

// @title PriceScout API
// @version 1.0
// @description Price-comparison service: product search, AI analysis, affiliate links, search history and saved products

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting PriceScout service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	historyRepo := repository.NewHistoryRepository(db, appLogger)
	savedRepo := repository.NewSavedProductRepository(db, appLogger)

	// Analysis providers: primary OpenAI, secondary GigaChat, each only when
	// its credential is configured. With neither, analyze serves a canned result.
	var providers []llm.Provider
	if cfg.AI.OpenAIAPIKey != "" {
		providers = append(providers, llm.NewOpenAIProvider(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel))
		appLogger.Info("OpenAI analysis provider enabled", zap.String("model", cfg.AI.OpenAIModel))
	}
	if cfg.AI.GigaChatKey != "" {
		gigachat, err := llm.NewGigaChatProvider(ctx, llm.GigaChatConfig{
			APIKey:             cfg.AI.GigaChatKey,
			Scope:              cfg.AI.Scope,
			InsecureSkipVerify: cfg.AI.InsecureSkipVerify,
		}, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize GigaChat provider", zap.Error(err))
		}
		defer gigachat.Close()
		providers = append(providers, gigachat)
		appLogger.Info("GigaChat analysis provider enabled")
	}
	if len(providers) == 0 {
		appLogger.Warn("No analysis providers configured, analyze will return canned results")
	}
	llmClient := llm.NewClient(providers...)

	// Services
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	searchService := service.NewSearchService(historyRepo, appLogger)
	analyzeService := service.NewAnalyzeService(llmClient, appLogger)
	affiliateService := service.NewAffiliateService(&cfg.Affiliate, appLogger)
	historyService := service.NewHistoryService(historyRepo, appLogger)
	savedService := service.NewSavedProductService(savedRepo, appLogger)

	// Router
	app := api.SetupRouter(cfg, api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, appLogger),
		Search:    handlers.NewSearchHandler(searchService, appLogger),
		Analyze:   handlers.NewAnalyzeHandler(analyzeService, appLogger),
		Affiliate: handlers.NewAffiliateHandler(affiliateService, appLogger),
		History:   handlers.NewHistoryHandler(historyService, appLogger),
		Saved:     handlers.NewSavedHandler(savedService, appLogger),
	}, jwtManager, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
