package services

import (
	"context"
	"testing"

	"carteira/internal/aggregation"
	"carteira/internal/testutil"
)

func TestCreateTag(t *testing.T) {
	ctx := context.Background()

	t.Run("trims_name", func(t *testing.T) {
		e := newEnv(t)

		tag, err := e.tags.CreateTag(ctx, testutil.NewUserID(), "  travel ", "#00ff00")
		testutil.AssertNoError(t, err)
		if tag.Name != "travel" {
			t.Errorf("expected trimmed name, got %q", tag.Name)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		e := newEnv(t)

		_, err := e.tags.CreateTag(ctx, testutil.NewUserID(), "   ", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_ignores_case", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()

		_, err := e.tags.CreateTag(ctx, userID, "Travel", "")
		testutil.AssertNoError(t, err)
		_, err = e.tags.CreateTag(ctx, userID, "TRAVEL", "")
		testutil.AssertAppError(t, err, "DUPLICATE_TAG")

		// Another user may reuse the name
		_, err = e.tags.CreateTag(ctx, testutil.NewUserID(), "travel", "")
		testutil.AssertNoError(t, err)
	})
}

func TestGetUserTags(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := testutil.NewUserID()

	for _, name := range []string{"work", "family", "health"} {
		_, err := e.tags.CreateTag(ctx, userID, name, "")
		testutil.AssertNoError(t, err)
	}

	tags, err := e.tags.GetUserTags(ctx, userID)
	testutil.AssertNoError(t, err)
	if len(tags) != 3 || tags[0].Name != "family" || tags[2].Name != "work" {
		t.Errorf("expected tags ordered by name, got %+v", tags)
	}

	none, err := e.tags.GetUserTags(ctx, testutil.NewUserID())
	testutil.AssertNoError(t, err)
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", none)
	}
}

func TestUpdateTag(t *testing.T) {
	ctx := context.Background()

	t.Run("rename_keeps_snapshots", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()
		tag := testutil.CreateTestTag(t, e.db, userID)
		oldName := tag.Name
		tx := testutil.CreateTestTransaction(t, e.db, userID, aggregation.KindExpense, "10", testNow, testutil.WithTags(tag))

		updated, err := e.tags.UpdateTag(ctx, userID, tag.ID, ptr("renamed"), nil)
		testutil.AssertNoError(t, err)
		if updated.Name != "renamed" {
			t.Errorf("expected renamed, got %s", updated.Name)
		}

		stored, err := e.transactions.GetTransactionByID(ctx, userID, tx.ID)
		testutil.AssertNoError(t, err)
		if len(stored.Tags) != 1 || stored.Tags[0].Name != oldName {
			t.Errorf("expected snapshot %q, got %+v", oldName, stored.Tags)
		}
	})

	t.Run("rename_to_own_name_other_case", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()
		tag, err := e.tags.CreateTag(ctx, userID, "bills", "")
		testutil.AssertNoError(t, err)

		_, err = e.tags.UpdateTag(ctx, userID, tag.ID, ptr("Bills"), nil)
		testutil.AssertNoError(t, err)
	})

	t.Run("rename_to_taken_name", func(t *testing.T) {
		e := newEnv(t)
		userID := testutil.NewUserID()
		_, err := e.tags.CreateTag(ctx, userID, "bills", "")
		testutil.AssertNoError(t, err)
		other, err := e.tags.CreateTag(ctx, userID, "rent", "")
		testutil.AssertNoError(t, err)

		_, err = e.tags.UpdateTag(ctx, userID, other.ID, ptr("BILLS"), nil)
		testutil.AssertAppError(t, err, "DUPLICATE_TAG")
	})
}

func TestDeleteTag(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	userID := testutil.NewUserID()
	tag := testutil.CreateTestTag(t, e.db, userID)

	testutil.AssertAppError(t, e.tags.DeleteTag(ctx, testutil.NewUserID(), tag.ID), "TAG_NOT_FOUND")
	testutil.AssertNoError(t, e.tags.DeleteTag(ctx, userID, tag.ID))

	_, err := e.tags.GetTagByID(ctx, userID, tag.ID)
	testutil.AssertAppError(t, err, "TAG_NOT_FOUND")
}
