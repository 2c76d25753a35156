package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn   func(userID string, in services.TransactionInput) (*models.Transaction, error)
	createInstallmentsFn  func(userID string, in services.TransactionInput, count int) ([]models.Transaction, error)
	getUserTransactionsFn func(userID string, filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getTransactionByIDFn  func(userID, transactionID string) (*models.Transaction, error)
	updateTransactionFn   func(userID, transactionID string, in services.TransactionInput) (*models.Transaction, error)
	deleteTransactionFn   func(userID, transactionID string) error
}

func (m *mockTransactionService) CreateTransaction(_ context.Context, userID string, in services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(userID, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) CreateInstallments(_ context.Context, userID string, in services.TransactionInput, count int) ([]models.Transaction, error) {
	if m.createInstallmentsFn != nil {
		return m.createInstallmentsFn(userID, in, count)
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) GetUserTransactions(_ context.Context, userID string, filter services.TransactionFilter, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.getUserTransactionsFn != nil {
		return m.getUserTransactionsFn(userID, filter, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(_ context.Context, userID, transactionID string) (*models.Transaction, error) {
	if m.getTransactionByIDFn != nil {
		return m.getTransactionByIDFn(userID, transactionID)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) UpdateTransaction(_ context.Context, userID, transactionID string, in services.TransactionInput) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(userID, transactionID, in)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) DeleteTransaction(_ context.Context, userID, transactionID string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(userID, transactionID)
	}
	return nil
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/transactions", handler.CreateTransaction)
	auth.POST("/transactions/installments", handler.CreateInstallments)
	auth.GET("/transactions", handler.GetTransactions)
	auth.GET("/transactions/:id", handler.GetTransactionByID)
	auth.PUT("/transactions/:id", handler.UpdateTransaction)
	auth.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var captured services.TransactionInput
		txSvc := &mockTransactionService{
			createTransactionFn: func(userID string, in services.TransactionInput) (*models.Transaction, error) {
				captured = in
				return &models.Transaction{
					Base:      models.Base{ID: testID},
					UserID:    userID,
					Kind:      in.Kind,
					Amount:    in.Amount,
					AccountID: in.AccountID,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions",
			`{"account_id":"`+testID+`","kind":"income","amount":"5000.00","description":"Salary","date":"2025-03-05","tag_ids":["`+missingID+`"]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["amount"] != "5000" {
			t.Errorf("expected amount 5000, got %v", tx["amount"])
		}
		if want := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC); !captured.Date.Equal(want) {
			t.Errorf("expected date %v, got %v", want, captured.Date)
		}
		if len(captured.TagIDs) != 1 || captured.TagIDs[0] != missingID {
			t.Errorf("expected tag ids to pass through, got %v", captured.TagIDs)
		}
	})

	t.Run("leaves the date zero when omitted", func(t *testing.T) {
		var captured services.TransactionInput
		txSvc := &mockTransactionService{
			createTransactionFn: func(_ string, in services.TransactionInput) (*models.Transaction, error) {
				captured = in
				return &models.Transaction{Base: models.Base{ID: testID}}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"card_id":"`+testID+`","kind":"expense","amount":12.5}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !captured.Date.IsZero() {
			t.Errorf("expected zero date, got %v", captured.Date)
		}
	})

	t.Run("returns 400 on invalid kind", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"account_id":"`+testID+`","kind":"transfer","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed date", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"account_id":"`+testID+`","kind":"expense","amount":"10","date":"15/03/2025"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 when no payment source", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(string, services.TransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrMissingPaymentSource
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"kind":"expense","amount":"10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MISSING_PAYMENT_SOURCE")
	})

	t.Run("returns 404 when account not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			createTransactionFn: func(string, services.TransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/transactions", `{"account_id":"`+missingID+`","kind":"expense","amount":"10"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestTransactionHandler_CreateInstallments(t *testing.T) {
	t.Run("returns 201 with every installment", func(t *testing.T) {
		var capturedCount int
		txSvc := &mockTransactionService{
			createInstallmentsFn: func(_ string, in services.TransactionInput, count int) ([]models.Transaction, error) {
				capturedCount = count
				group := testID
				out := make([]models.Transaction, count)
				for i := range out {
					out[i] = models.Transaction{InstallmentGroupID: &group, InstallmentNumber: i + 1, InstallmentTotal: count}
				}
				return out, nil
			},
		}
		audit := &mockAuditService{}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, audit))

		rec := doRequest(r, "POST", "/transactions/installments",
			`{"card_id":"`+testID+`","kind":"expense","amount":"100","installments":3}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if capturedCount != 3 {
			t.Errorf("expected 3 installments, got %d", capturedCount)
		}
		if txs := parseJSON(t, rec)["transactions"].([]interface{}); len(txs) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(txs))
		}
		if audit.entries[0].ResourceID != testID {
			t.Errorf("expected the group id to be audited, got %q", audit.entries[0].ResourceID)
		}
	})

	for _, count := range []string{"1", "73"} {
		t.Run("returns 400 on "+count+" installments", func(t *testing.T) {
			r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/transactions/installments",
				`{"card_id":"`+testID+`","kind":"expense","amount":"100","installments":`+count+`}`)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	t.Run("parses every filter", func(t *testing.T) {
		var captured services.TransactionFilter
		txSvc := &mockTransactionService{
			getUserTransactionsFn: func(_ string, filter services.TransactionFilter, _ pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				captured = filter
				resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions?period=custom&from=2025-03-01&to=2025-03-31"+
			"&kind=expense&category_id=all&account_id="+testID+"&tag_ids=a,b&tag_ids=c"+
			"&search=market&min_amount=10&max_amount=99.90", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Period != aggregation.PeriodCustom {
			t.Errorf("expected custom period, got %q", captured.Period)
		}
		if captured.From == nil || !captured.From.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected from %v", captured.From)
		}
		if captured.To == nil || captured.To.Day() != 31 {
			t.Errorf("unexpected to %v", captured.To)
		}
		if captured.Kind != aggregation.KindExpense {
			t.Errorf("expected expense, got %q", captured.Kind)
		}
		if captured.CategoryID != "all" || captured.AccountID != testID {
			t.Errorf("unexpected ids %q %q", captured.CategoryID, captured.AccountID)
		}
		if len(captured.TagIDs) != 3 {
			t.Errorf("expected 3 tag ids, got %v", captured.TagIDs)
		}
		if captured.Search != "market" {
			t.Errorf("expected search market, got %q", captured.Search)
		}
		if captured.MaxAmount == nil || !captured.MaxAmount.Equal(decimal.RequireFromString("99.9")) {
			t.Errorf("unexpected max amount %v", captured.MaxAmount)
		}
	})

	tests := []struct {
		name    string
		query   string
		message string
	}{
		{"unknown period", "period=last-week", "period_selector"},
		{"bad from", "from=yesterday", "from"},
		{"unknown kind", "kind=transfer", "transaction_kind"},
		{"bad amount", "min_amount=ten", "min_amount"},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

			rec := doRequest(r, "GET", "/transactions?"+tt.query, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			body := parseJSON(t, rec)
			assertErrorCode(t, body, "INVALID_INPUT")
			msg, _ := body["error"].(map[string]interface{})["message"].(string)
			if !strings.Contains(msg, tt.message) {
				t.Errorf("expected message to mention %q, got %q", tt.message, msg)
			}
		})
	}

	t.Run("returns 400 on an invalid range", func(t *testing.T) {
		txSvc := &mockTransactionService{
			getUserTransactionsFn: func(string, services.TransactionFilter, pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
				return nil, apperrors.ErrInvalidRange
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/transactions?from=2025-03-31&to=2025-03-01", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_RANGE")
	})
}

func TestTransactionHandler_UpdateTransaction(t *testing.T) {
	var capturedID string
	txSvc := &mockTransactionService{
		updateTransactionFn: func(_, transactionID string, in services.TransactionInput) (*models.Transaction, error) {
			capturedID = transactionID
			return &models.Transaction{Base: models.Base{ID: transactionID}, Amount: in.Amount}, nil
		},
	}
	r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

	rec := doRequest(r, "PUT", "/transactions/"+testID, `{"account_id":"`+testID+`","kind":"expense","amount":"42"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if capturedID != testID {
		t.Errorf("expected id %s, got %s", testID, capturedID)
	}
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		txSvc := &mockTransactionService{
			deleteTransactionFn: func(_, _ string) error { return apperrors.ErrTransactionNotFound },
		}
		r := setupTransactionRouter(NewTransactionHandler(txSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/transactions/"+missingID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/transactions/1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
