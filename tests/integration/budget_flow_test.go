package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBudgetFlow_ProgressFollowsTransactions(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	category := app.mustCreate(t, "/api/v1/categories", `{"name":"Groceries","type":"expense"}`, token, "category")
	account := app.mustCreate(t, "/api/v1/accounts",
		`{"name":"Checking","type":"checking","initial_balance":"1000"}`, token, "account")
	budget := app.mustCreate(t, "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Food","limit_amount":"200","period":"monthly","start_date":"2025-03-01"}`,
			category["id"]), token, "budget")
	budgetID := budget["id"].(string)

	progress := func() map[string]interface{} {
		t.Helper()
		rec := app.request("GET", "/api/v1/budgets/"+budgetID+"/progress", "", token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		return parseJSON(t, rec)["progress"].(map[string]interface{})
	}

	p := progress()
	if p["spent"] != "0" || p["status"] != "good" {
		t.Errorf("expected nothing spent, got spent=%v status=%v", p["spent"], p["status"])
	}

	for _, tx := range []struct{ amount, date string }{
		{"80", "2025-03-05"},
		{"50", "2025-03-10"},
		{"999", "2025-02-27"}, // previous month, outside the window
	} {
		app.mustCreate(t, "/api/v1/transactions",
			fmt.Sprintf(`{"kind":"expense","amount":%q,"date":%q,"account_id":%q,"category_id":%q}`,
				tx.amount, tx.date, account["id"], category["id"]), token, "transaction")
	}

	p = progress()
	if p["spent"] != "130" {
		t.Errorf("expected 130 spent, got %v", p["spent"])
	}
	if p["remaining"] != "70" {
		t.Errorf("expected 70 remaining, got %v", p["remaining"])
	}
	if p["percentage"].(float64) != 65 {
		t.Errorf("expected 65%%, got %v", p["percentage"])
	}
	if p["status"] != "moderate" {
		t.Errorf("expected moderate, got %v", p["status"])
	}

	// The change bus refreshed the stored spent amount.
	rec := app.request("GET", "/api/v1/budgets/"+budgetID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := parseJSON(t, rec)["budget"].(map[string]interface{})["spent_amount"]; got != "130" {
		t.Errorf("expected cached spent_amount 130, got %v", got)
	}

	app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"expense","amount":"100","date":"2025-03-14","account_id":%q,"category_id":%q}`,
			account["id"], category["id"]), token, "transaction")

	p = progress()
	if p["status"] != "exceeded" || p["exceeded"] != true {
		t.Errorf("expected exceeded, got status=%v exceeded=%v", p["status"], p["exceeded"])
	}
	if p["remaining"] != "-30" {
		t.Errorf("expected -30 remaining, got %v", p["remaining"])
	}
}

func TestBudgetFlow_RejectsIncomeCategory(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	category := app.mustCreate(t, "/api/v1/categories", `{"name":"Salary","type":"income"}`, token, "category")

	rec := app.request("POST", "/api/v1/budgets",
		fmt.Sprintf(`{"category_id":%q,"name":"Nope","limit_amount":"100","period":"monthly"}`, category["id"]), token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
