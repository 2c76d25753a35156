package integration

import (
	"fmt"
	"net/http"
	"testing"
)

// seedMonth records one month of activity: a salary, two grocery expenses,
// a debt due later in the month and a partial receivable payment.
func seedMonth(t *testing.T, app *testApp, token string) (accountID, groceriesID string) {
	t.Helper()

	account := app.mustCreate(t, "/api/v1/accounts",
		`{"name":"Checking","type":"checking","initial_balance":"1000"}`, token, "account")
	accountID = account["id"].(string)
	salary := app.mustCreate(t, "/api/v1/categories", `{"name":"Salary","type":"income"}`, token, "category")
	groceries := app.mustCreate(t, "/api/v1/categories", `{"name":"Groceries","type":"expense"}`, token, "category")
	groceriesID = groceries["id"].(string)

	app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"income","amount":"1000","date":"2025-03-01","account_id":%q,"category_id":%q,"description":"March salary"}`,
			accountID, salary["id"]), token, "transaction")
	app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"expense","amount":"80","date":"2025-03-05","account_id":%q,"category_id":%q,"description":"Market"}`,
			accountID, groceriesID), token, "transaction")
	app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"expense","amount":"50","date":"2025-03-10","account_id":%q,"category_id":%q,"description":"Bakery"}`,
			accountID, groceriesID), token, "transaction")

	app.mustCreate(t, "/api/v1/debts",
		`{"creditor":"Landlord","amount":"300","due_date":"2025-03-20"}`, token, "debt")

	receivable := app.mustCreate(t, "/api/v1/receivables",
		`{"debtor":"Ana","amount":"500","due_date":"2025-03-30"}`, token, "receivable")
	rec := app.request("POST", "/api/v1/receivables/"+receivable["id"].(string)+"/payments",
		fmt.Sprintf(`{"amount":"200","date":"2025-03-12","account_id":%q}`, accountID), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("record payment: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	return accountID, groceriesID
}

func TestReportFlow_SummaryIncludesDebtsAndReceivables(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)
	seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/summary?period=current-month", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)
	totals := body["totals"].(map[string]interface{})

	// Income: salary 1000 + receivable payment 200. Expense: 80 + 50 + debt 300.
	if totals["income"] != "1200" {
		t.Errorf("expected income 1200, got %v", totals["income"])
	}
	if totals["expense"] != "430" {
		t.Errorf("expected expense 430, got %v", totals["expense"])
	}
	if totals["net"] != "770" {
		t.Errorf("expected net 770, got %v", totals["net"])
	}

	period := body["period"].(map[string]interface{})
	if period["fallback_applied"] != false {
		t.Errorf("expected no fallback, got %v", period["fallback_applied"])
	}
}

func TestReportFlow_InvalidCustomRangeFallsBack(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)
	seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/summary?period=custom&from=2025-03-31&to=2025-03-01", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)
	period := body["period"].(map[string]interface{})
	if period["fallback_applied"] != true {
		t.Errorf("expected fallback, got %v", period["fallback_applied"])
	}
	if period["selector"] != "current-month" {
		t.Errorf("expected current-month, got %v", period["selector"])
	}
	if got := body["totals"].(map[string]interface{})["expense"]; got != "430" {
		t.Errorf("expected the current month's expense 430, got %v", got)
	}
}

func TestReportFlow_BreakdownByCategory(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)
	_, groceriesID := seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/breakdown?period=current-month&kind=expense&group_by=category", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["grand_total"] != "430" {
		t.Errorf("expected grand total 430, got %v", summary["grand_total"])
	}

	groups := summary["groups"].([]interface{})
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d: %v", len(groups), groups)
	}
	// The uncategorized debt is the largest group.
	first := groups[0].(map[string]interface{})
	second := groups[1].(map[string]interface{})
	if first["total"] != "300" {
		t.Errorf("expected the debt first with 300, got %v", first["total"])
	}
	if second["key"] != groceriesID || second["label"] != "Groceries" || second["total"] != "130" {
		t.Errorf("unexpected groceries group %v", second)
	}
}

func TestReportFlow_CashFlowRunsCumulativeBalance(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)
	seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/cash-flow?period=current-month&group_by=month", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)
	points := body["points"].([]interface{})
	if len(points) != 1 {
		t.Fatalf("expected one monthly point, got %d", len(points))
	}
	point := points[0].(map[string]interface{})
	if point["key"] != "2025-03" {
		t.Errorf("expected key 2025-03, got %v", point["key"])
	}
	if point["net"] != "770" {
		t.Errorf("expected net 770, got %v", point["net"])
	}
}

func TestReportFlow_FilterBySearch(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)
	seedMonth(t, app, token)

	rec := app.request("GET", "/api/v1/reports/summary?period=current-month&search=bakery", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	totals := parseJSON(t, rec)["totals"].(map[string]interface{})
	if totals["expense"] != "50" || totals["income"] != "0" {
		t.Errorf("expected only the bakery expense, got %v", totals)
	}
}
