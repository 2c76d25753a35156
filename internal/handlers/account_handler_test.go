package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// --- mock account service ---

type mockAccountService struct {
	createAccountFn   func(userID string, in services.AccountInput) (*models.Account, error)
	getUserAccountsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	getAccountByIDFn  func(userID, accountID string) (*models.Account, error)
	updateAccountFn   func(userID, accountID string, fields services.AccountUpdateFields) (*models.Account, error)
	deleteAccountFn   func(userID, accountID string) error
}

func (m *mockAccountService) CreateAccount(_ context.Context, userID string, in services.AccountInput) (*models.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(userID, in)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) GetUserAccounts(_ context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	if m.getUserAccountsFn != nil {
		return m.getUserAccountsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Account{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAccountService) GetAccountByID(_ context.Context, userID, accountID string) (*models.Account, error) {
	if m.getAccountByIDFn != nil {
		return m.getAccountByIDFn(userID, accountID)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) UpdateAccount(_ context.Context, userID, accountID string, fields services.AccountUpdateFields) (*models.Account, error) {
	if m.updateAccountFn != nil {
		return m.updateAccountFn(userID, accountID, fields)
	}
	return &models.Account{}, nil
}

func (m *mockAccountService) DeleteAccount(_ context.Context, userID, accountID string) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(userID, accountID)
	}
	return nil
}

func (m *mockAccountService) UpdateAccountBalance(_ *gorm.DB, _, _ string, _ decimal.Decimal) error {
	return nil
}

// verify interface compliance
var _ services.AccountServicer = (*mockAccountService)(nil)

func setupAccountRouter(handler *AccountHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/accounts", handler.CreateAccount)
	auth.GET("/accounts", handler.GetAccounts)
	auth.GET("/accounts/:id", handler.GetAccountByID)
	auth.PUT("/accounts/:id", handler.UpdateAccount)
	auth.DELETE("/accounts/:id", handler.DeleteAccount)
	return r
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var captured services.AccountInput
		acctSvc := &mockAccountService{
			createAccountFn: func(userID string, in services.AccountInput) (*models.Account, error) {
				captured = in
				return &models.Account{
					Base:     models.Base{ID: testID},
					UserID:   userID,
					Name:     in.Name,
					Type:     in.Type,
					Balance:  in.Balance,
					Currency: in.Currency,
					IsActive: true,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupAccountRouter(NewAccountHandler(acctSvc, audit))

		rec := doRequest(r, "POST", "/accounts",
			`{"name":"Nubank","type":"checking","currency":"BRL","initial_balance":"1500.50"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		acct := result["account"].(map[string]interface{})
		if acct["name"] != "Nubank" {
			t.Errorf("expected Nubank, got %v", acct["name"])
		}
		if !captured.Balance.Equal(decimal.RequireFromString("1500.50")) {
			t.Errorf("expected balance 1500.50, got %s", captured.Balance)
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "CREATE_ACCOUNT" {
			t.Errorf("expected CREATE_ACCOUNT audit entry, got %v", got)
		}
	})

	t.Run("accepts a numeric balance", func(t *testing.T) {
		var captured services.AccountInput
		acctSvc := &mockAccountService{
			createAccountFn: func(_ string, in services.AccountInput) (*models.Account, error) {
				captured = in
				return &models.Account{Base: models.Base{ID: testID}}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Wallet","type":"cash","initial_balance":20.25}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !captured.Balance.Equal(decimal.RequireFromString("20.25")) {
			t.Errorf("expected balance 20.25, got %s", captured.Balance)
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/accounts", `{"type":"cash"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on unknown type", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Test","type":"crypto"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid currency", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/accounts", `{"name":"Test","type":"cash","currency":"INVALID"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewAccountHandler(&mockAccountService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/accounts", handler.CreateAccount)

		rec := doRequest(r, "POST", "/accounts", `{"name":"Test","type":"cash"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetAccounts(t *testing.T) {
	t.Run("returns 200 with paginated accounts", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getUserAccountsFn: func(_ string, _ pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
				resp := pagination.NewPageResponse([]models.Account{
					{Base: models.Base{ID: testID}, Name: "Cash"},
					{Base: models.Base{ID: missingID}, Name: "Savings"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 accounts, got %d", len(data))
		}
		if result["total_items"].(float64) != 2 {
			t.Errorf("expected total_items=2, got %v", result["total_items"])
		}
	})

	t.Run("passes pagination params to service", func(t *testing.T) {
		var capturedPage pagination.PageRequest
		acctSvc := &mockAccountService{
			getUserAccountsFn: func(_ string, page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
				capturedPage = page
				resp := pagination.NewPageResponse([]models.Account{}, 2, 5, 0)
				return &resp, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		doRequest(r, "GET", "/accounts?page=2&page_size=5&sort=-balance", "")

		if capturedPage.Page != 2 || capturedPage.PageSize != 5 {
			t.Errorf("expected page 2 size 5, got %d/%d", capturedPage.Page, capturedPage.PageSize)
		}
		if capturedPage.Sort != "-balance" {
			t.Errorf("expected sort -balance, got %q", capturedPage.Sort)
		}
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_GetAccountByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getAccountByIDFn: func(_, accountID string) (*models.Account, error) {
				return &models.Account{Base: models.Base{ID: accountID}, Name: "Savings", Type: models.AccountTypeSavings}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		acct := parseJSON(t, rec)["account"].(map[string]interface{})
		if acct["id"] != testID {
			t.Errorf("expected id %s, got %v", testID, acct["id"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		acctSvc := &mockAccountService{
			getAccountByIDFn: func(_, _ string) (*models.Account, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts/"+missingID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/accounts/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Run("passes only the given fields", func(t *testing.T) {
		var captured services.AccountUpdateFields
		acctSvc := &mockAccountService{
			updateAccountFn: func(_, accountID string, fields services.AccountUpdateFields) (*models.Account, error) {
				captured = fields
				return &models.Account{Base: models.Base{ID: accountID}, IsActive: false}, nil
			},
		}
		r := setupAccountRouter(NewAccountHandler(acctSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/accounts/"+testID, `{"is_active":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.IsActive == nil || *captured.IsActive {
			t.Errorf("expected is_active=false to be passed, got %v", captured.IsActive)
		}
		if captured.Name != nil {
			t.Errorf("expected name untouched, got %v", *captured.Name)
		}
	})

	t.Run("returns 400 on invalid color", func(t *testing.T) {
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/accounts/"+testID, `{"color":"blue"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAccountHandler_DeleteAccount(t *testing.T) {
	t.Run("returns 200 and audits", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupAccountRouter(NewAccountHandler(&mockAccountService{}, audit))

		rec := doRequest(r, "DELETE", "/accounts/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := audit.actions(); len(got) != 1 || got[0] != "DELETE_ACCOUNT" {
			t.Errorf("expected DELETE_ACCOUNT audit entry, got %v", got)
		}
	})

	t.Run("returns 409 when in use", func(t *testing.T) {
		acctSvc := &mockAccountService{
			deleteAccountFn: func(_, _ string) error { return apperrors.ErrAccountInUse },
		}
		audit := &mockAuditService{}
		r := setupAccountRouter(NewAccountHandler(acctSvc, audit))

		rec := doRequest(r, "DELETE", "/accounts/"+testID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_IN_USE")
		if len(audit.actions()) != 0 {
			t.Errorf("expected no audit entry on failure")
		}
	})
}
