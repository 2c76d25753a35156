package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"carteira/internal/aggregation"
	"carteira/internal/cache"
	"carteira/internal/clock"
	"carteira/internal/events"
	"carteira/internal/handlers"
	"carteira/internal/logger"
	"carteira/internal/middleware"
	"carteira/internal/services"
	"carteira/internal/testutil"
	"carteira/internal/validator"
)

const (
	testSecret   = "integration-secret"
	testAudience = "authenticated"
)

// fixedNow is the clock every flow runs against: mid-March 2025, UTC.
var fixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Datasets services.DatasetServicer
	changes  []events.Change
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp wires the services, the change bus and the routes the way the
// API binary does, over an isolated in-memory SQLite database.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	app := &testApp{DB: db}

	now := clock.Fixed(fixedNow)
	resolver := aggregation.NewResolver(now)
	bus := events.NewBus()

	datasets := services.NewDatasetService(db, cache.NewLRUCache[*services.Dataset](16, time.Minute), now)
	refresher := services.NewCacheRefreshService(db, datasets, resolver)
	audit := services.NewAuditService(db)
	accounts := services.NewAccountService(db, bus)
	cards := services.NewCardService(db, datasets, resolver, bus)
	categories := services.NewCategoryService(db, bus)
	tags := services.NewTagService(db, bus)
	transactions := services.NewTransactionService(db, accounts, resolver, bus)
	budgets := services.NewBudgetService(db, datasets, resolver, bus)
	goals := services.NewGoalService(db, resolver, bus)
	debts := services.NewDebtService(db, accounts, resolver, bus)
	receivables := services.NewReceivableService(db, accounts, resolver, bus)
	reports := services.NewReportService(datasets, resolver, time.UTC)
	app.Datasets = datasets

	bus.Subscribe(datasets.Invalidate, events.AllEntities...)
	bus.Subscribe(refresher.Handle, services.RefreshEntities...)
	bus.SubscribeAll(func(_ context.Context, c events.Change) error {
		app.changes = append(app.changes, c)
		return nil
	})

	accountHandler := handlers.NewAccountHandler(accounts, audit)
	cardHandler := handlers.NewCardHandler(cards, audit)
	categoryHandler := handlers.NewCategoryHandler(categories, audit)
	tagHandler := handlers.NewTagHandler(tags, audit)
	transactionHandler := handlers.NewTransactionHandler(transactions, audit)
	budgetHandler := handlers.NewBudgetHandler(budgets, audit)
	goalHandler := handlers.NewGoalHandler(goals, audit)
	debtHandler := handlers.NewDebtHandler(debts, audit)
	receivableHandler := handlers.NewReceivableHandler(receivables, audit)
	reportHandler := handlers.NewReportHandler(reports)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(testSecret, testAudience))

	protected.POST("/accounts", accountHandler.CreateAccount)
	protected.GET("/accounts", accountHandler.GetAccounts)
	protected.GET("/accounts/:id", accountHandler.GetAccountByID)
	protected.DELETE("/accounts/:id", accountHandler.DeleteAccount)

	protected.POST("/cards", cardHandler.CreateCard)
	protected.GET("/cards/:id/usage", cardHandler.GetCardUsage)

	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.POST("/categories/defaults", categoryHandler.SeedDefaultCategories)

	protected.POST("/tags", tagHandler.CreateTag)

	protected.POST("/transactions", transactionHandler.CreateTransaction)
	protected.POST("/transactions/installments", transactionHandler.CreateInstallments)
	protected.GET("/transactions", transactionHandler.GetTransactions)
	protected.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	protected.POST("/budgets", budgetHandler.CreateBudget)
	protected.GET("/budgets/:id", budgetHandler.GetBudget)
	protected.GET("/budgets/:id/progress", budgetHandler.GetBudgetProgress)

	protected.POST("/goals", goalHandler.CreateGoal)
	protected.POST("/goals/:id/contributions", goalHandler.Contribute)
	protected.GET("/goals/:id/progress", goalHandler.GetGoalProgress)

	protected.POST("/debts", debtHandler.CreateDebt)
	protected.POST("/debts/:id/pay", debtHandler.PayDebt)

	protected.POST("/receivables", receivableHandler.CreateReceivable)
	protected.POST("/receivables/:id/payments", receivableHandler.RecordPayment)

	protected.GET("/reports/summary", reportHandler.GetSummary)
	protected.GET("/reports/breakdown", reportHandler.GetBreakdown)
	protected.GET("/reports/cash-flow", reportHandler.GetCashFlow)
	protected.GET("/reports/budgets", reportHandler.GetBudgetsOverview)

	app.Router = router
	return app
}

// tokenFor signs an access token for userID the way the auth provider does.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	claims := &middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// newUser returns a fresh user id and a token for it.
func newUser(t *testing.T) (userID, token string) {
	t.Helper()
	userID = testutil.NewUserID()
	return userID, tokenFor(t, userID)
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// mustCreate posts body and returns the object under key, failing unless
// the response is 201.
func (app *testApp) mustCreate(t *testing.T, path, body, token, key string) map[string]interface{} {
	t.Helper()
	rec := app.request("POST", path, body, token)
	if rec.Code != 201 {
		t.Fatalf("POST %s: expected 201, got %d: %s", path, rec.Code, rec.Body.String())
	}
	obj, ok := parseJSON(t, rec)[key].(map[string]interface{})
	if !ok {
		t.Fatalf("POST %s: response has no %q object: %s", path, key, rec.Body.String())
	}
	return obj
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
