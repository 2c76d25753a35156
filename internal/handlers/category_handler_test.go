package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	createCategoryFn    func(userID string, in services.CategoryInput) (*models.Category, error)
	getUserCategoriesFn func(userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	getCategoryByIDFn   func(userID, categoryID string) (*models.Category, error)
	updateCategoryFn    func(userID, categoryID string, fields services.CategoryUpdateFields) (*models.Category, error)
	deleteCategoryFn    func(userID, categoryID string) error
	seedDefaultsFn      func(userID string) ([]models.Category, error)
}

func (m *mockCategoryService) CreateCategory(_ context.Context, userID string, in services.CategoryInput) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, in)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetUserCategories(_ context.Context, userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	if m.getUserCategoriesFn != nil {
		return m.getUserCategoriesFn(userID, categoryType, page)
	}
	resp := pagination.NewPageResponse([]models.Category{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockCategoryService) GetCategoryByID(_ context.Context, userID, categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) UpdateCategory(_ context.Context, userID, categoryID string, fields services.CategoryUpdateFields) (*models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, fields)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(_ context.Context, userID, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

func (m *mockCategoryService) SeedDefaults(_ context.Context, userID string) ([]models.Category, error) {
	if m.seedDefaultsFn != nil {
		return m.seedDefaultsFn(userID)
	}
	return []models.Category{}, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/categories", handler.CreateCategory)
	auth.POST("/categories/defaults", handler.SeedDefaultCategories)
	auth.GET("/categories", handler.GetUserCategories)
	auth.GET("/categories/:id", handler.GetCategoryByID)
	auth.PUT("/categories/:id", handler.UpdateCategory)
	auth.DELETE("/categories/:id", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			createCategoryFn: func(userID string, in services.CategoryInput) (*models.Category, error) {
				return &models.Category{
					Base:   models.Base{ID: testID},
					UserID: userID,
					Name:   in.Name,
					Type:   in.Type,
					Color:  in.Color,
				}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories",
			`{"name":"Food","type":"expense","color":"#FF5733"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		cat := parseJSON(t, rec)["category"].(map[string]interface{})
		if cat["name"] != "Food" {
			t.Errorf("expected Food, got %v", cat["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"type":"expense"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid type", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Test","type":"transfer"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid color format", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"name":"Test","type":"expense","color":"red"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{}, &mockAuditService{})
		r := gin.New()
		r.POST("/categories", handler.CreateCategory)

		rec := doRequest(r, "POST", "/categories", `{"name":"Test","type":"expense"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetUserCategories(t *testing.T) {
	t.Run("returns 200 with all categories", func(t *testing.T) {
		var capturedType *models.CategoryType
		catSvc := &mockCategoryService{
			getUserCategoriesFn: func(_ string, ct *models.CategoryType, _ pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
				capturedType = ct
				resp := pagination.NewPageResponse([]models.Category{
					{Base: models.Base{ID: testID}, Name: "Food"},
					{Base: models.Base{ID: missingID}, Name: "Salary"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if capturedType != nil {
			t.Errorf("expected no type filter, got %v", *capturedType)
		}
		if data := parseJSON(t, rec)["data"].([]interface{}); len(data) != 2 {
			t.Errorf("expected 2 categories, got %d", len(data))
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		var capturedType *models.CategoryType
		catSvc := &mockCategoryService{
			getUserCategoriesFn: func(_ string, ct *models.CategoryType, _ pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
				capturedType = ct
				resp := pagination.NewPageResponse([]models.Category{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		doRequest(r, "GET", "/categories?type=income", "")

		if capturedType == nil || *capturedType != models.CategoryTypeIncome {
			t.Errorf("expected income filter, got %v", capturedType)
		}
	})

	t.Run("returns 400 on invalid type filter", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories?type=invalid", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestCategoryHandler_GetCategoryByID(t *testing.T) {
	t.Run("returns 404 when not found", func(t *testing.T) {
		catSvc := &mockCategoryService{
			getCategoryByIDFn: func(_, _ string) (*models.Category, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/categories/"+missingID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		catSvc := &mockCategoryService{
			updateCategoryFn: func(_, categoryID string, fields services.CategoryUpdateFields) (*models.Category, error) {
				return &models.Category{Base: models.Base{ID: categoryID}, Name: *fields.Name}, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/categories/"+testID, `{"name":"Groceries"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		cat := parseJSON(t, rec)["category"].(map[string]interface{})
		if cat["name"] != "Groceries" {
			t.Errorf("expected Groceries, got %v", cat["name"])
		}
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/categories/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns 409 when in use", func(t *testing.T) {
		catSvc := &mockCategoryService{
			deleteCategoryFn: func(_, _ string) error { return apperrors.ErrCategoryInUse },
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/categories/"+testID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_IN_USE")
	})

	t.Run("returns 409 for a default category", func(t *testing.T) {
		catSvc := &mockCategoryService{
			deleteCategoryFn: func(_, _ string) error { return apperrors.ErrDefaultCategory },
		}
		r := setupCategoryRouter(NewCategoryHandler(catSvc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/categories/"+testID, "")

		assertErrorCode(t, parseJSON(t, rec), "DEFAULT_CATEGORY")
	})
}

func TestCategoryHandler_SeedDefaultCategories(t *testing.T) {
	catSvc := &mockCategoryService{
		seedDefaultsFn: func(userID string) ([]models.Category, error) {
			return []models.Category{
				{Base: models.Base{ID: testID}, UserID: userID, Name: "Salary", IsDefault: true},
			}, nil
		},
	}
	audit := &mockAuditService{}
	r := setupCategoryRouter(NewCategoryHandler(catSvc, audit))

	rec := doRequest(r, "POST", "/categories/defaults", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cats := parseJSON(t, rec)["categories"].([]interface{}); len(cats) != 1 {
		t.Errorf("expected 1 category, got %d", len(cats))
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "SEED_CATEGORIES" {
		t.Errorf("expected SEED_CATEGORIES audit entry, got %v", got)
	}
}
