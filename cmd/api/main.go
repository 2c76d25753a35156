package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carteira/internal/aggregation"
	"carteira/internal/amqp"
	"carteira/internal/cache"
	"carteira/internal/clock"
	"carteira/internal/config"
	"carteira/internal/database"
	_ "carteira/internal/docs" // Import swagger docs
	"carteira/internal/events"
	"carteira/internal/handlers"
	"carteira/internal/logger"
	"carteira/internal/middleware"
	"carteira/internal/services"
	"carteira/internal/validator"
)

// @title           Carteira API
// @version         1.0
// @description     Carteira tracks accounts, cards, transactions, budgets, goals, debts and receivables, and aggregates them into period reports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	loc := appConfig.Location()

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()
	handlers.SetDateLocation(loc)

	db := dbManager.DB()
	systemClock := clock.NewSystem(loc)
	resolver := aggregation.NewResolver(systemClock)
	bus := events.NewBus()

	// Services
	datasetService := services.NewDatasetService(db,
		cache.NewLRUCache[*services.Dataset](appConfig.ReportCacheSize, appConfig.ReportCacheTTL), systemClock)
	refreshService := services.NewCacheRefreshService(db, datasetService, resolver)
	auditService := services.NewAuditService(db)
	accountService := services.NewAccountService(db, bus)
	cardService := services.NewCardService(db, datasetService, resolver, bus)
	categoryService := services.NewCategoryService(db, bus)
	tagService := services.NewTagService(db, bus)
	transactionService := services.NewTransactionService(db, accountService, resolver, bus)
	budgetService := services.NewBudgetService(db, datasetService, resolver, bus)
	goalService := services.NewGoalService(db, resolver, bus)
	debtService := services.NewDebtService(db, accountService, resolver, bus)
	receivableService := services.NewReceivableService(db, accountService, resolver, bus)
	reportService := services.NewReportService(datasetService, resolver, loc)

	// Invalidation must run before the refresher reloads the dataset.
	bus.Subscribe(datasetService.Invalidate, events.AllEntities...)
	bus.Subscribe(refreshService.Handle, services.RefreshEntities...)

	if appConfig.AMQPURL != "" {
		publisher, err := amqp.NewPublisher(appConfig.AMQPURL, appConfig.AMQPExchange)
		if err != nil {
			return fmt.Errorf("failed to connect to message broker: %w", err)
		}
		defer publisher.Close()
		bus.SubscribeAll(publisher.Forward)
		log.Infof("Forwarding record changes to exchange %s", appConfig.AMQPExchange)
	}

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	cardHandler := handlers.NewCardHandler(cardService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	tagHandler := handlers.NewTagHandler(tagService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	goalHandler := handlers.NewGoalHandler(goalService, auditService)
	debtHandler := handlers.NewDebtHandler(debtService, auditService)
	receivableHandler := handlers.NewReceivableHandler(receivableService, auditService)
	reportHandler := handlers.NewReportHandler(reportService)
	maintenanceHandler := handlers.NewMaintenanceHandler(refreshService, datasetService)

	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", appConfig.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	maintenance := v1.Group("/maintenance")
	maintenance.Use(middleware.MaintenanceAuthMiddleware(appConfig.MaintenanceAPIKey))
	maintenance.POST("/refresh-caches", maintenanceHandler.RefreshCaches)
	maintenance.GET("/cache-stats", maintenanceHandler.GetCacheStats)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(appConfig.AuthJWTSecret, appConfig.AuthJWTAudience))

	accounts := protected.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)

	cards := protected.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.GetCards)
	cards.GET("/:id", cardHandler.GetCard)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)
	cards.GET("/:id/usage", cardHandler.GetCardUsage)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.POST("/defaults", categoryHandler.SeedDefaultCategories)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	tags := protected.Group("/tags")
	tags.POST("", tagHandler.CreateTag)
	tags.GET("", tagHandler.GetTags)
	tags.GET("/:id", tagHandler.GetTag)
	tags.PUT("/:id", tagHandler.UpdateTag)
	tags.DELETE("/:id", tagHandler.DeleteTag)

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/installments", transactionHandler.CreateInstallments)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)
	goals.POST("/:id/contributions", goalHandler.Contribute)
	goals.GET("/:id/progress", goalHandler.GetGoalProgress)

	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetDebts)
	debts.GET("/:id", debtHandler.GetDebt)
	debts.PUT("/:id", debtHandler.UpdateDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)
	debts.POST("/:id/pay", debtHandler.PayDebt)

	receivables := protected.Group("/receivables")
	receivables.POST("", receivableHandler.CreateReceivable)
	receivables.GET("", receivableHandler.GetReceivables)
	receivables.GET("/:id", receivableHandler.GetReceivable)
	receivables.PUT("/:id", receivableHandler.UpdateReceivable)
	receivables.DELETE("/:id", receivableHandler.DeleteReceivable)
	receivables.POST("/:id/payments", receivableHandler.RecordPayment)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/breakdown", reportHandler.GetBreakdown)
	reports.GET("/cash-flow", reportHandler.GetCashFlow)
	reports.GET("/budgets", reportHandler.GetBudgetsOverview)
	reports.GET("/goals", reportHandler.GetGoalsOverview)
	reports.GET("/cards", reportHandler.GetCardsOverview)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Carteira backend server on port %s (timezone %s)", appConfig.Port, loc)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
