package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carteira/internal/aggregation"
	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

type mockCardService struct {
	createCardFn   func(userID string, in services.CardInput) (*models.Card, error)
	getUserCardsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error)
	getCardByIDFn  func(userID, cardID string) (*models.Card, error)
	updateCardFn   func(userID, cardID string, fields services.CardUpdateFields) (*models.Card, error)
	deleteCardFn   func(userID, cardID string) error
	getCardUsageFn func(userID, cardID string) (*services.CardUsage, error)
}

func (m *mockCardService) CreateCard(_ context.Context, userID string, in services.CardInput) (*models.Card, error) {
	if m.createCardFn != nil {
		return m.createCardFn(userID, in)
	}
	return &models.Card{}, nil
}

func (m *mockCardService) GetUserCards(_ context.Context, userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Card], error) {
	if m.getUserCardsFn != nil {
		return m.getUserCardsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Card{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockCardService) GetCardByID(_ context.Context, userID, cardID string) (*models.Card, error) {
	if m.getCardByIDFn != nil {
		return m.getCardByIDFn(userID, cardID)
	}
	return &models.Card{}, nil
}

func (m *mockCardService) UpdateCard(_ context.Context, userID, cardID string, fields services.CardUpdateFields) (*models.Card, error) {
	if m.updateCardFn != nil {
		return m.updateCardFn(userID, cardID, fields)
	}
	return &models.Card{}, nil
}

func (m *mockCardService) DeleteCard(_ context.Context, userID, cardID string) error {
	if m.deleteCardFn != nil {
		return m.deleteCardFn(userID, cardID)
	}
	return nil
}

func (m *mockCardService) GetCardUsage(_ context.Context, userID, cardID string) (*services.CardUsage, error) {
	if m.getCardUsageFn != nil {
		return m.getCardUsageFn(userID, cardID)
	}
	return &services.CardUsage{}, nil
}

var _ services.CardServicer = (*mockCardService)(nil)

func setupCardRouter(handler *CardHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/cards", handler.CreateCard)
	auth.GET("/cards", handler.GetCards)
	auth.GET("/cards/:id", handler.GetCard)
	auth.PUT("/cards/:id", handler.UpdateCard)
	auth.DELETE("/cards/:id", handler.DeleteCard)
	auth.GET("/cards/:id/usage", handler.GetCardUsage)
	return r
}

func TestCardHandler_CreateCard(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var captured services.CardInput
		svc := &mockCardService{
			createCardFn: func(userID string, in services.CardInput) (*models.Card, error) {
				captured = in
				return &models.Card{Base: models.Base{ID: testID}, UserID: userID, Name: in.Name, Type: in.Type, CreditLimit: in.CreditLimit}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupCardRouter(NewCardHandler(svc, audit))

		rec := doRequest(r, "POST", "/cards",
			`{"name":"Visa","type":"credit","last_digits":"4242","credit_limit":"1000","closing_day":3,"due_day":10}`)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		card := parseJSON(t, rec)["card"].(map[string]interface{})
		assert.Equal(t, "Visa", card["name"])
		assert.Equal(t, "1000", card["credit_limit"])
		assert.Equal(t, 3, captured.ClosingDay)
		assert.True(t, captured.CreditLimit.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, []string{"CREATE_CARD"}, audit.actions())
	})

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", `{"name":"Visa","type":"gift"}`},
		{"closing day out of range", `{"name":"Visa","type":"credit","closing_day":32}`},
		{"last digits not numeric", `{"name":"Visa","type":"credit","last_digits":"42a2"}`},
		{"account id not a uuid", `{"name":"Visa","type":"credit","account_id":"12"}`},
		{"missing name", `{"type":"debit"}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupCardRouter(NewCardHandler(&mockCardService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/cards", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		})
	}

	t.Run("returns 404 when the account is not found", func(t *testing.T) {
		svc := &mockCardService{
			createCardFn: func(string, services.CardInput) (*models.Card, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		r := setupCardRouter(NewCardHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/cards", `{"name":"Debit","type":"debit","account_id":"`+missingID+`"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})
}

func TestCardHandler_GetCards(t *testing.T) {
	svc := &mockCardService{
		getUserCardsFn: func(userID string, _ pagination.PageRequest) (*pagination.PageResponse[models.Card], error) {
			assert.Equal(t, testUserID, userID)
			resp := pagination.NewPageResponse([]models.Card{{Base: models.Base{ID: testID}, Name: "Visa"}}, 1, 20, 1)
			return &resp, nil
		},
	}
	r := setupCardRouter(NewCardHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/cards", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, parseJSON(t, rec)["data"], 1)
}

func TestCardHandler_UpdateCard(t *testing.T) {
	var captured services.CardUpdateFields
	svc := &mockCardService{
		updateCardFn: func(_, cardID string, fields services.CardUpdateFields) (*models.Card, error) {
			captured = fields
			return &models.Card{Base: models.Base{ID: cardID}}, nil
		},
	}
	r := setupCardRouter(NewCardHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "PUT", "/cards/"+testID, `{"credit_limit":"2500.75","closing_day":28}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, captured.CreditLimit)
	assert.Equal(t, "2500.75", captured.CreditLimit.String())
	require.NotNil(t, captured.ClosingDay)
	assert.Equal(t, 28, *captured.ClosingDay)
	assert.Nil(t, captured.Name)
}

func TestCardHandler_DeleteCard(t *testing.T) {
	t.Run("returns 409 when in use", func(t *testing.T) {
		svc := &mockCardService{
			deleteCardFn: func(_, _ string) error { return apperrors.ErrCardInUse },
		}
		r := setupCardRouter(NewCardHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/cards/"+testID, "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assertErrorCode(t, parseJSON(t, rec), "CARD_IN_USE")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		r := setupCardRouter(NewCardHandler(&mockCardService{}, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/cards/7", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCardHandler_GetCardUsage(t *testing.T) {
	svc := &mockCardService{
		getCardUsageFn: func(_, cardID string) (*services.CardUsage, error) {
			return &services.CardUsage{
				CardID:         cardID,
				Name:           "Visa",
				Type:           aggregation.CardCredit,
				CardEvaluation: aggregation.EvaluateCard(aggregation.CardCredit, decimal.NewFromInt(1000), decimal.NewFromInt(800)),
			}, nil
		},
	}
	r := setupCardRouter(NewCardHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/cards/"+testID+"/usage", "")

	require.Equal(t, http.StatusOK, rec.Code)
	usage := parseJSON(t, rec)["usage"].(map[string]interface{})
	assert.Equal(t, testID, usage["card_id"])
	assert.Equal(t, "attention", usage["status"])
	assert.InDelta(t, 80.0, usage["usage_percentage"], 0.001)
	assert.Equal(t, "200", usage["available"])
}
