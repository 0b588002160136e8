package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receiptai/internal/backend"
	"receiptai/internal/config"
	"receiptai/internal/handlers"
	"receiptai/internal/identity"
	"receiptai/internal/middleware"
	"receiptai/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Outbound clients
	identityClient := identity.NewClient(cfg.Identity.URL, cfg.Identity.AnonKey)
	backendClient := backend.NewClient(cfg.Backend.WebhookBaseURL)

	// Services
	uploadService := services.NewUploadService(backendClient)
	summaryService := services.NewSummaryService(backendClient)
	provisioningService := services.NewProvisioningService(cfg.Backend.WebhookBaseURL)

	// Handlers
	authHandler := handlers.NewAuthHandler(identityClient, provisioningService, uploadService)
	documentHandler := handlers.NewDocumentHandler(uploadService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	healthHandler := handlers.NewHealthCheckHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	requireSession := middleware.RequireSession(identityClient)

	// Auth
	auth := e.Group("/auth")
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/recover", authHandler.Recover)
	auth.GET("/callback", authHandler.Callback)
	auth.POST("/signout", authHandler.SignOut, requireSession)
	auth.GET("/session", authHandler.Session, requireSession)

	// Documents and summaries
	api := e.Group("/api", requireSession)
	api.POST("/documents", documentHandler.Upload)
	api.GET("/documents/recent", documentHandler.Recent)
	api.POST("/tax-summary", summaryHandler.Generate)
	api.GET("/tax-summary/export", summaryHandler.ExportCSV)

	// Operational
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
