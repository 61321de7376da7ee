package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/garage/backend/internal/application/billing"
	hrapp "github.com/garage/backend/internal/application/hr"
	partyapp "github.com/garage/backend/internal/application/party"
	"github.com/garage/backend/internal/infrastructure/config"
	"github.com/garage/backend/internal/infrastructure/logger"
	"github.com/garage/backend/internal/infrastructure/persistence"
	"github.com/garage/backend/internal/infrastructure/printing"
	"github.com/garage/backend/internal/interfaces/http/handler"
	"github.com/garage/backend/internal/interfaces/http/middleware"
	"github.com/garage/backend/internal/interfaces/http/router"
	"github.com/garage/backend/pkg/numwords"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Garage Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories. Customer and showroom repositories are built
	// inside the billing transaction scope, which owns the party resolver.
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	receiptRepo := persistence.NewGormMoneyReceiptRepository(db.DB)
	receiptIndex := persistence.NewGormReceiptIndex(db.DB)
	receiptQuery := persistence.NewGormMoneyReceiptQuery(db.DB)
	companyQuery := persistence.NewGormCompanyQuery(db.DB)
	salaryRepo := persistence.NewGormSalaryRepository(db.DB)
	salaryQuery := persistence.NewGormSalaryQuery(db.DB)

	// Transaction scopes bind repositories to one gorm transaction per use case
	billingScope := persistence.NewGormBillingTransactionScope(db.DB)
	partyScope := persistence.NewGormPartyTransactionScope(db.DB)
	hrScope := persistence.NewGormHrTransactionScope(db.DB)

	// PDF rendering pipeline
	pdfRenderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		Headless:       true,
		DisableGPU:     true,
		NoSandbox:      true,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	docStore, err := printing.NewFileSystemStorage(cfg.Printing.OutputDir)
	if err != nil {
		log.Fatal("Failed to initialize document storage", zap.Error(err))
	}
	receiptRenderer := printing.NewReceiptDocumentRenderer(pdfRenderer, docStore, log)

	// Initialize application services
	receiptService := billingapp.NewMoneyReceiptService(
		billingScope,
		receiptQuery,
		receiptRepo,
		vehicleRepo,
		numwords.Amount,
		numwords.FormatCurrency,
		receiptRenderer,
		log,
	)
	companyService := partyapp.NewCompanyService(
		partyScope,
		companyRepo,
		vehicleRepo,
		companyQuery,
		receiptIndex,
		log,
	)
	salaryService := hrapp.NewSalaryService(hrScope, salaryRepo, salaryQuery, log)

	// Initialize handlers
	receiptHandler := handler.NewMoneyReceiptHandler(receiptService, cfg.Printing.AssetBaseURL)
	companyHandler := handler.NewCompanyHandler(companyService)
	salaryHandler := handler.NewSalaryHandler(salaryService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Billing domain (money receipts)
	receiptRoutes := router.NewDomainGroup("billing", "/money-receipts")
	receiptRoutes.POST("", receiptHandler.Create)
	receiptRoutes.GET("", receiptHandler.List)
	receiptRoutes.GET("/dues", receiptHandler.ListDue)
	receiptRoutes.PUT("/recycle-all", receiptHandler.MoveAllToRecycleBin)
	receiptRoutes.PUT("/restore-all", receiptHandler.RestoreAllFromRecycleBin)
	receiptRoutes.GET("/:id", receiptHandler.Get)
	receiptRoutes.GET("/:id/pdf", receiptHandler.DownloadPDF)
	receiptRoutes.PUT("/:id", receiptHandler.Update)
	receiptRoutes.PUT("/:id/recycle", receiptHandler.MoveToRecycleBin)
	receiptRoutes.PUT("/:id/restore", receiptHandler.RestoreFromRecycleBin)
	receiptRoutes.DELETE("/:id", receiptHandler.Delete)
	receiptRoutes.DELETE("/:id/permanent", receiptHandler.PermanentlyDelete)

	// Party domain (companies and their fleets)
	companyRoutes := router.NewDomainGroup("party", "/companies")
	companyRoutes.POST("", companyHandler.Create)
	companyRoutes.GET("", companyHandler.List)
	companyRoutes.PUT("/recycle-all", companyHandler.MoveAllToRecycleBin)
	companyRoutes.PUT("/restore-all", companyHandler.RestoreAllFromRecycleBin)
	companyRoutes.GET("/:id", companyHandler.Get)
	companyRoutes.PUT("/:id", companyHandler.Update)
	companyRoutes.PUT("/:id/recycle", companyHandler.MoveToRecycleBin)
	companyRoutes.PUT("/:id/restore", companyHandler.RestoreFromRecycleBin)
	companyRoutes.DELETE("/:id", companyHandler.Delete)
	companyRoutes.DELETE("/:id/permanent", companyHandler.PermanentlyDelete)

	// HR domain (salaries)
	salaryRoutes := router.NewDomainGroup("hr", "/salaries")
	salaryRoutes.POST("", salaryHandler.CreateBulk)
	salaryRoutes.GET("", salaryHandler.List)
	salaryRoutes.GET("/current-month", salaryHandler.CurrentMonth)
	salaryRoutes.PUT("/:id", salaryHandler.Update)
	salaryRoutes.DELETE("/:id", salaryHandler.Delete)

	r.Register(receiptRoutes).
		Register(companyRoutes).
		Register(salaryRoutes)

	// Setup routes
	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
