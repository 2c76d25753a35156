package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carteira/internal/aggregation"
	"carteira/internal/cache"
	"carteira/internal/events"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// AccountInput carries the fields for creating an account.
type AccountInput struct {
	Name        string
	Type        models.AccountType
	Institution string
	Balance     decimal.Decimal
	Currency    string
	Color       string
}

// AccountUpdateFields holds optional fields for updating an account.
// Nil pointers mean "don't change". Balance only moves through records.
type AccountUpdateFields struct {
	Name        *string
	Institution *string
	Color       *string
	IsActive    *bool
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(ctx context.Context, userID string, in AccountInput) (*models.Account, error)
	GetUserAccounts(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*models.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
	UpdateAccountBalance(tx *gorm.DB, userID, accountID string, delta decimal.Decimal) error
}

// CardInput carries the fields for creating a card.
type CardInput struct {
	AccountID   *string
	Name        string
	Type        aggregation.CardType
	Brand       string
	LastDigits  string
	CreditLimit decimal.Decimal
	ClosingDay  int
	DueDay      int
	Color       string
}

// CardUpdateFields holds optional fields for updating a card.
type CardUpdateFields struct {
	Name        *string
	Brand       *string
	LastDigits  *string
	Color       *string
	CreditLimit *decimal.Decimal
	ClosingDay  *int
	DueDay      *int
	IsActive    *bool
}

// CardUsage is a card's limit usage over its current billing cycle.
type CardUsage struct {
	CardID     string               `json:"card_id"`
	Name       string               `json:"name"`
	Type       aggregation.CardType `json:"type"`
	CycleStart time.Time            `json:"cycle_start"`
	CycleEnd   time.Time            `json:"cycle_end"`
	aggregation.CardEvaluation
}

// CardServicer defines the contract for card-related business logic.
type CardServicer interface {
	CreateCard(ctx context.Context, userID string, in CardInput) (*models.Card, error)
	GetUserCards(ctx context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error)
	GetCardByID(ctx context.Context, userID, cardID string) (*models.Card, error)
	UpdateCard(ctx context.Context, userID, cardID string, fields CardUpdateFields) (*models.Card, error)
	DeleteCard(ctx context.Context, userID, cardID string) error
	GetCardUsage(ctx context.Context, userID, cardID string) (*CardUsage, error)
}

// CategoryInput carries the fields for creating a category.
type CategoryInput struct {
	Name      string
	Type      models.CategoryType
	Icon      string
	Color     string
	SortOrder int
}

// CategoryUpdateFields holds optional fields for updating a category. The
// type is fixed at creation since records and budgets depend on it.
type CategoryUpdateFields struct {
	Name      *string
	Icon      *string
	Color     *string
	SortOrder *int
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(ctx context.Context, userID string, in CategoryInput) (*models.Category, error)
	GetUserCategories(ctx context.Context, userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, fields CategoryUpdateFields) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	SeedDefaults(ctx context.Context, userID string) ([]models.Category, error)
}

// TagServicer defines the contract for tag-related business logic.
type TagServicer interface {
	CreateTag(ctx context.Context, userID, name, color string) (*models.Tag, error)
	GetUserTags(ctx context.Context, userID string) ([]models.Tag, error)
	GetTagByID(ctx context.Context, userID, tagID string) (*models.Tag, error)
	UpdateTag(ctx context.Context, userID, tagID string, name, color *string) (*models.Tag, error)
	DeleteTag(ctx context.Context, userID, tagID string) error
}

// TransactionInput is the full set of writable transaction fields. Updates
// replace every field.
type TransactionInput struct {
	Kind        aggregation.Kind
	Amount      decimal.Decimal
	Date        time.Time
	AccountID   *string
	CardID      *string
	CategoryID  *string
	GoalID      *string
	Description string
	Notes       string
	TagIDs      []string
}

// TransactionFilter holds optional filter parameters for listing
// transactions. An empty Period with no From/To lists every date.
type TransactionFilter struct {
	Period     aggregation.PeriodSelector
	From       *time.Time
	To         *time.Time
	Kind       aggregation.Kind
	CategoryID string
	AccountID  string
	CardID     string
	TagIDs     []string
	Search     string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, userID string, in TransactionInput) (*models.Transaction, error)
	CreateInstallments(ctx context.Context, userID string, in TransactionInput, count int) ([]models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID string, filter TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// BudgetInput carries the fields for creating a budget.
type BudgetInput struct {
	CategoryID  string
	Name        string
	LimitAmount decimal.Decimal
	Period      aggregation.BudgetPeriod
	StartDate   time.Time
	EndDate     *time.Time
}

// BudgetUpdateFields holds optional fields for updating a budget.
type BudgetUpdateFields struct {
	Name        *string
	LimitAmount *decimal.Decimal
	Period      *aggregation.BudgetPeriod
	EndDate     *time.Time
	IsActive    *bool
}

// BudgetProgress is a budget evaluated against live spending in its
// current window.
type BudgetProgress struct {
	BudgetID     string                   `json:"budget_id"`
	Name         string                   `json:"name"`
	CategoryID   string                   `json:"category_id"`
	CategoryName string                   `json:"category_name"`
	Period       aggregation.BudgetPeriod `json:"period"`
	WindowStart  time.Time                `json:"window_start"`
	WindowEnd    time.Time                `json:"window_end"`
	aggregation.BudgetEvaluation
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(ctx context.Context, userID string, in BudgetInput) (*models.Budget, error)
	GetUserBudgets(ctx context.Context, userID string, page pagination.PageRequest, isActive *bool, period *aggregation.BudgetPeriod) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*models.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, fields BudgetUpdateFields) (*models.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
	GetBudgetProgress(ctx context.Context, userID, budgetID string) (*BudgetProgress, error)
}

// GoalInput carries the fields for creating a goal.
type GoalInput struct {
	Title         string
	Description   string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	Color         string
}

// GoalUpdateFields holds optional fields for updating a goal.
type GoalUpdateFields struct {
	Title        *string
	Description  *string
	TargetAmount *decimal.Decimal
	Deadline     *time.Time
	Status       *models.GoalStatus
	Color        *string
}

// GoalProgress is a goal evaluated at the current moment.
type GoalProgress struct {
	GoalID       string            `json:"goal_id"`
	Title        string            `json:"title"`
	StoredStatus models.GoalStatus `json:"stored_status"`
	Deadline     *time.Time        `json:"deadline,omitempty"`
	aggregation.GoalEvaluation
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(ctx context.Context, userID string, in GoalInput) (*models.Goal, error)
	GetUserGoals(ctx context.Context, userID string, status *models.GoalStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(ctx context.Context, userID, goalID string) (*models.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID string, fields GoalUpdateFields) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
	Contribute(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*models.Goal, error)
	GetGoalProgress(ctx context.Context, userID, goalID string) (*GoalProgress, error)
}

// DebtInput carries the fields for creating a debt.
type DebtInput struct {
	Creditor    string
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	CategoryID  *string
	AccountID   *string
}

// DebtUpdateFields holds optional fields for updating a debt.
type DebtUpdateFields struct {
	Creditor    *string
	Description *string
	Amount      *decimal.Decimal
	DueDate     *time.Time
	CategoryID  *string
}

// DebtServicer defines the contract for debt-related business logic.
type DebtServicer interface {
	CreateDebt(ctx context.Context, userID string, in DebtInput) (*models.Debt, error)
	GetUserDebts(ctx context.Context, userID string, status *models.DebtStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Debt], error)
	GetDebtByID(ctx context.Context, userID, debtID string) (*models.Debt, error)
	UpdateDebt(ctx context.Context, userID, debtID string, fields DebtUpdateFields) (*models.Debt, error)
	DeleteDebt(ctx context.Context, userID, debtID string) error
	MarkDebtPaid(ctx context.Context, userID, debtID string, paidAt time.Time) (*models.Debt, error)
}

// ReceivableInput carries the fields for creating a receivable.
type ReceivableInput struct {
	Debtor      string
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	CategoryID  *string
}

// ReceivableUpdateFields holds optional fields for updating a receivable.
type ReceivableUpdateFields struct {
	Debtor      *string
	Description *string
	Amount      *decimal.Decimal
	DueDate     *time.Time
	CategoryID  *string
}

// PaymentInput is one payment received against a receivable.
type PaymentInput struct {
	Amount    decimal.Decimal
	Date      time.Time
	AccountID *string
	Notes     string
}

// ReceivableServicer defines the contract for receivable-related business logic.
type ReceivableServicer interface {
	CreateReceivable(ctx context.Context, userID string, in ReceivableInput) (*models.Receivable, error)
	GetUserReceivables(ctx context.Context, userID string, status *models.ReceivableStatus, page pagination.PageRequest) (*pagination.PageResponse[models.Receivable], error)
	GetReceivableByID(ctx context.Context, userID, receivableID string) (*models.Receivable, error)
	UpdateReceivable(ctx context.Context, userID, receivableID string, fields ReceivableUpdateFields) (*models.Receivable, error)
	DeleteReceivable(ctx context.Context, userID, receivableID string) error
	RecordPayment(ctx context.Context, userID, receivableID string, in PaymentInput) (*models.Receivable, error)
}

// ReportQuery selects the period and records a report covers.
type ReportQuery struct {
	Period     aggregation.PeriodSelector
	From       *time.Time
	To         *time.Time
	Kind       aggregation.Kind
	GroupBy    aggregation.GroupBy
	CategoryID string
	AccountID  string
	CardID     string
	TagIDs     []string
	Search     string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
}

// ReportPeriod is the resolved window of a report. FallbackApplied is set
// when the requested custom range was rejected and the current month was
// used instead.
type ReportPeriod struct {
	Selector        aggregation.PeriodSelector `json:"selector"`
	Start           time.Time                  `json:"start"`
	End             time.Time                  `json:"end"`
	FallbackApplied bool                       `json:"fallback_applied"`
}

// SummaryReport holds income and expense totals for a period.
type SummaryReport struct {
	Period ReportPeriod           `json:"period"`
	Totals aggregation.KindTotals `json:"totals"`
}

// BreakdownReport groups one kind of record by a dimension.
type BreakdownReport struct {
	Period  ReportPeriod        `json:"period"`
	Summary aggregation.Summary `json:"summary"`
}

// CashFlowReport is a running balance over day or month buckets.
type CashFlowReport struct {
	Period         ReportPeriod                `json:"period"`
	GroupBy        aggregation.GroupBy         `json:"group_by"`
	OpeningBalance decimal.Decimal             `json:"opening_balance"`
	Points         []aggregation.CashFlowPoint `json:"points"`
}

// ReportServicer defines the contract for read-only reports.
type ReportServicer interface {
	GetSummary(ctx context.Context, userID string, q ReportQuery) (*SummaryReport, error)
	GetBreakdown(ctx context.Context, userID string, q ReportQuery) (*BreakdownReport, error)
	GetCashFlow(ctx context.Context, userID string, q ReportQuery) (*CashFlowReport, error)
	GetBudgetsOverview(ctx context.Context, userID string) ([]BudgetProgress, error)
	GetGoalsOverview(ctx context.Context, userID string) ([]GoalProgress, error)
	GetCardsOverview(ctx context.Context, userID string) ([]CardUsage, error)
}

// DatasetServicer loads the full per-user dataset the reports aggregate
// over. Returned datasets may be shared between callers and must be
// treated as read-only.
type DatasetServicer interface {
	Load(ctx context.Context, userID string) (*Dataset, error)
	Invalidate(ctx context.Context, c events.Change) error
	Stats() cache.Stats
}

// CacheRefreshServicer keeps the stored spent and used amounts in step with
// the records they summarize.
type CacheRefreshServicer interface {
	Handle(ctx context.Context, c events.Change) error
	RefreshUser(ctx context.Context, userID string) error
	RefreshAll(ctx context.Context) (int, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
