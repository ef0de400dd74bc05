package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	identityapp "github.com/facturo/backend/internal/application/identity"
	invoicingapp "github.com/facturo/backend/internal/application/invoicing"
	"github.com/facturo/backend/internal/infrastructure/auth"
	"github.com/facturo/backend/internal/infrastructure/config"
	"github.com/facturo/backend/internal/infrastructure/logger"
	"github.com/facturo/backend/internal/infrastructure/persistence"
	"github.com/facturo/backend/internal/infrastructure/printing"
	"github.com/facturo/backend/internal/infrastructure/storage"
	"github.com/facturo/backend/internal/interfaces/http/handler"
	"github.com/facturo/backend/internal/interfaces/http/middleware"
	"github.com/facturo/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	appLogger, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(appLogger)

	appLogger.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version))

	gormLogLevel := gormlogger.Warn
	if cfg.App.Env == "development" {
		gormLogLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabase(&cfg.Database, logger.NewGormLogger(appLogger, gormLogLevel))
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logos, err := storage.NewLocalFileStorage(&cfg.Storage, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		RemoteURL:      cfg.Printing.RemoteChromeURL,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         appLogger,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer renderer.Close()

	// Repositories
	users := persistence.NewGormUserRepository(db.DB)
	teams := persistence.NewGormTeamRepository(db.DB)
	memberships := persistence.NewGormMembershipRepository(db.DB)
	clients := persistence.NewGormClientRepository(db.DB)
	invoices := persistence.NewGormInvoiceRepository(db.DB)

	// Application services
	builder := printing.NewDocumentBuilder(printing.NewTemplateEngine(), logos, appLogger)
	sessionService := identityapp.NewSessionService(users, teams, memberships, appLogger)
	teamService := identityapp.NewTeamService(teams, logos, appLogger)
	clientService := invoicingapp.NewClientService(clients, invoices, appLogger)
	invoiceService := invoicingapp.NewInvoiceService(invoices, clients, teams, builder, renderer, appLogger)
	exportService := invoicingapp.NewExportService(invoiceService, clients, appLogger)
	dashboardService := invoicingapp.NewDashboardService(invoiceService, invoices, appLogger)

	verifier := auth.NewTokenVerifier(cfg.JWT)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		appLogger.Fatal("Invalid trusted proxies configuration", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(appLogger))
	engine.Use(logger.Recovery(appLogger))
	engine.Use(middleware.CORSWithOrigins(cfg.HTTP.CORSAllowOrigins))

	if err := handler.RegisterCustomValidators(); err != nil {
		appLogger.Fatal("Failed to register validators", zap.Error(err))
	}

	handler.NewSystemHandler(db, version).RegisterRoutes(engine)

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithGroupMiddleware(middleware.Auth(verifier, sessionService)),
	)
	r.Register(handler.NewClientHandler(clientService))
	r.Register(handler.NewInvoiceHandler(invoiceService))
	r.Register(handler.NewExportHandler(exportService))
	r.Register(handler.NewDashboardHandler(dashboardService))
	r.Register(handler.NewTeamHandler(teamService))
	r.Setup()

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
