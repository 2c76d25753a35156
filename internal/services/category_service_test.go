package services

import (
	"context"
	"testing"

	"carteira/internal/aggregation"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		e := newEnv(t)

		category, err := e.categories.CreateCategory(ctx, testutil.NewUserID(), CategoryInput{
			Name: "Groceries", Type: models.CategoryTypeExpense, Color: "#ff0000",
		})
		testutil.AssertNoError(t, err)
		if category.ID == "" || category.IsDefault {
			t.Errorf("unexpected category %+v", category)
		}
	})

	t.Run("invalid_type", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.categories.CreateCategory(ctx, testutil.NewUserID(), CategoryInput{Name: "X", Type: "transfer"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name_same_type", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()

		_, err := e.categories.CreateCategory(ctx, userID, CategoryInput{Name: "Gifts", Type: models.CategoryTypeExpense})
		testutil.AssertNoError(t, err)
		_, err = e.categories.CreateCategory(ctx, userID, CategoryInput{Name: "Gifts", Type: models.CategoryTypeExpense})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("same_name_other_type", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()

		_, err := e.categories.CreateCategory(ctx, userID, CategoryInput{Name: "Gifts", Type: models.CategoryTypeExpense})
		testutil.AssertNoError(t, err)
		_, err = e.categories.CreateCategory(ctx, userID, CategoryInput{Name: "Gifts", Type: models.CategoryTypeIncome})
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserCategories(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := testutil.NewUserID()
	testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeIncome)
	testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeExpense)
	testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeExpense)
	testutil.CreateTestCategory(t, e.db, testutil.NewUserID(), models.CategoryTypeExpense)

	all, err := e.categories.GetUserCategories(ctx, userID, nil, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if all.TotalItems != 3 {
		t.Errorf("expected 3 categories, got %d", all.TotalItems)
	}

	expense := models.CategoryTypeExpense
	filtered, err := e.categories.GetUserCategories(ctx, userID, &expense, pagination.PageRequest{})
	testutil.AssertNoError(t, err)
	if filtered.TotalItems != 2 {
		t.Errorf("expected 2 expense categories, got %d", filtered.TotalItems)
	}
	for _, c := range filtered.Data {
		if c.Type != models.CategoryTypeExpense {
			t.Errorf("unexpected type %s", c.Type)
		}
	}
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := testutil.NewUserID()
	category := testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeExpense)

	updated, err := e.categories.UpdateCategory(ctx, userID, category.ID, CategoryUpdateFields{Name: ptr("Dining"), SortOrder: ptr(4)})
	testutil.AssertNoError(t, err)
	if updated.Name != "Dining" || updated.SortOrder != 4 {
		t.Errorf("unexpected category %+v", updated)
	}
	if updated.Type != models.CategoryTypeExpense {
		t.Errorf("type changed to %s", updated.Type)
	}

	_, err = e.categories.UpdateCategory(ctx, testutil.NewUserID(), category.ID, CategoryUpdateFields{Name: ptr("x")})
	testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("unused", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()
		category := testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeExpense)

		testutil.AssertNoError(t, e.categories.DeleteCategory(ctx, userID, category.ID))
		_, err := e.categories.GetCategoryByID(ctx, userID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("used_by_transaction", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()
		category := testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeExpense)
		testutil.CreateTestTransaction(t, e.db, userID, aggregation.KindExpense, "10", testNow, testutil.WithCategory(category.ID))

		testutil.AssertAppError(t, e.categories.DeleteCategory(ctx, userID, category.ID), "CATEGORY_IN_USE")
	})

	t.Run("used_by_budget", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()
		category := testutil.CreateTestCategory(t, e.db, userID, models.CategoryTypeExpense)
		testutil.CreateTestBudget(t, e.db, userID, category.ID, "100")

		testutil.AssertAppError(t, e.categories.DeleteCategory(ctx, userID, category.ID), "CATEGORY_IN_USE")
	})

	t.Run("default", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()
		seeded, err := e.categories.SeedDefaults(ctx, userID)
		testutil.AssertNoError(t, err)

		testutil.AssertAppError(t, e.categories.DeleteCategory(ctx, userID, seeded[0].ID), "DEFAULT_CATEGORY")
	})
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := testutil.NewUserID()

	first, err := e.categories.SeedDefaults(ctx, userID)
	testutil.AssertNoError(t, err)
	if len(first) != len(defaultCategories) {
		t.Fatalf("expected %d defaults, got %d", len(defaultCategories), len(first))
	}

	second, err := e.categories.SeedDefaults(ctx, userID)
	testutil.AssertNoError(t, err)
	if len(second) != len(first) {
		t.Errorf("expected reseeding to return %d, got %d", len(first), len(second))
	}

	page, err := e.categories.GetUserCategories(ctx, userID, nil, pagination.PageRequest{PageSize: 100})
	testutil.AssertNoError(t, err)
	if page.TotalItems != 13 {
		t.Errorf("expected 13 stored categories, got %d", page.TotalItems)
	}
}
