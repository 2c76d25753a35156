package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountFlow_BalanceFollowsTransactions(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	account := app.mustCreate(t, "/api/v1/accounts",
		`{"name":"Checking","type":"checking","initial_balance":"1000"}`, token, "account")
	accountID := account["id"].(string)
	assert.Equal(t, "1000", account["balance"])

	app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"income","amount":"250.50","date":"2025-03-02","account_id":%q}`, accountID), token, "transaction")
	expense := app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"expense","amount":"100","date":"2025-03-03","account_id":%q}`, accountID), token, "transaction")

	rec := app.request("GET", "/api/v1/accounts/"+accountID, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1150.5", parseJSON(t, rec)["account"].(map[string]interface{})["balance"])

	// Deleting the expense gives the money back.
	rec = app.request("DELETE", "/api/v1/transactions/"+expense["id"].(string), "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request("GET", "/api/v1/accounts/"+accountID, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1250.5", parseJSON(t, rec)["account"].(map[string]interface{})["balance"])
}

func TestAccountFlow_DeleteInUseConflicts(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	account := app.mustCreate(t, "/api/v1/accounts", `{"name":"Wallet","type":"cash"}`, token, "account")
	accountID := account["id"].(string)
	app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"expense","amount":"12","date":"2025-03-10","account_id":%q}`, accountID), token, "transaction")

	rec := app.request("DELETE", "/api/v1/accounts/"+accountID, "", token)

	assert.Equal(t, http.StatusConflict, rec.Code)
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	assert.Equal(t, "ACCOUNT_IN_USE", errObj["code"])
}

func TestCardFlow_UsageCoversCurrentCycle(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	card := app.mustCreate(t, "/api/v1/cards",
		`{"name":"Visa","type":"credit","credit_limit":"1000","closing_day":10,"due_day":20}`, token, "card")
	cardID := card["id"].(string)

	// The 3/05 purchase closed with the previous statement.
	app.mustCreate(t, "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"expense","amount":"500","date":"2025-03-05","card_id":%q}`, cardID), token, "transaction")

	rec := app.request("POST", "/api/v1/transactions/installments",
		fmt.Sprintf(`{"kind":"expense","amount":"100","date":"2025-03-12","card_id":%q,"installments":3,"description":"Headphones"}`, cardID), token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	installments := parseJSON(t, rec)["transactions"].([]interface{})
	require.Len(t, installments, 3)
	first := installments[0].(map[string]interface{})
	last := installments[2].(map[string]interface{})
	assert.Equal(t, "33.34", first["amount"])
	assert.Equal(t, "33.33", last["amount"])
	assert.Equal(t, float64(3), last["installment_total"])
	assert.Equal(t, first["installment_group_id"], last["installment_group_id"])

	rec = app.request("GET", "/api/v1/cards/"+cardID+"/usage", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	usage := parseJSON(t, rec)["usage"].(map[string]interface{})

	assert.Equal(t, "33.34", usage["used"])
	assert.Equal(t, "966.66", usage["available"])
	assert.Equal(t, "normal", usage["status"])
	assert.Equal(t, true, usage["applicable"])
	assert.Contains(t, usage["cycle_start"], "2025-03-11")
	assert.Contains(t, usage["cycle_end"], "2025-04-10")
}

func TestInstallments_RejectsOutOfRangeCount(t *testing.T) {
	app := setupApp(t)
	_, token := newUser(t)

	account := app.mustCreate(t, "/api/v1/accounts", `{"name":"Checking","type":"checking"}`, token, "account")

	rec := app.request("POST", "/api/v1/transactions/installments",
		fmt.Sprintf(`{"kind":"expense","amount":"100","date":"2025-03-12","account_id":%q,"installments":1}`, account["id"]), token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIsolation_UsersCannotSeeEachOther(t *testing.T) {
	app := setupApp(t)
	_, owner := newUser(t)
	_, stranger := newUser(t)

	account := app.mustCreate(t, "/api/v1/accounts",
		`{"name":"Savings","type":"savings","initial_balance":"5000"}`, owner, "account")
	accountID := account["id"].(string)

	rec := app.request("GET", "/api/v1/accounts/"+accountID, "", stranger)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Nor can they book against it.
	rec = app.request("POST", "/api/v1/transactions",
		fmt.Sprintf(`{"kind":"expense","amount":"10","date":"2025-03-10","account_id":%q}`, accountID), stranger)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.request("GET", "/api/v1/reports/summary", "", stranger)
	require.Equal(t, http.StatusOK, rec.Code)
	totals := parseJSON(t, rec)["totals"].(map[string]interface{})
	assert.Equal(t, "0", totals["expense"])
}

func TestAuth_RejectsMissingAndForeignTokens(t *testing.T) {
	app := setupApp(t)

	rec := app.request("GET", "/api/v1/accounts", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.request("GET", "/api/v1/accounts", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
