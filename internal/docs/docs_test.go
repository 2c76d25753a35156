package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

type document struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func TestRegisteredDocument(t *testing.T) {
	raw, err := swag.ReadDoc()
	if err != nil {
		t.Fatalf("failed to read registered document: %v", err)
	}

	var doc document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("registered document is not valid JSON: %v", err)
	}
	if doc.BasePath != "/api/v1" {
		t.Errorf("expected base path /api/v1, got %q", doc.BasePath)
	}

	routes := map[string][]string{
		"/accounts/{id}":              {"get", "put", "delete"},
		"/cards/{id}/usage":           {"get"},
		"/categories/defaults":        {"post"},
		"/transactions/installments":  {"post"},
		"/budgets/{id}/progress":      {"get"},
		"/goals/{id}/contributions":   {"post"},
		"/debts/{id}/pay":             {"post"},
		"/receivables/{id}/payments":  {"post"},
		"/reports/cash-flow":          {"get"},
		"/maintenance/refresh-caches": {"post"},
		"/maintenance/cache-stats":    {"get"},
	}
	for path, methods := range routes {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Errorf("missing path %s", path)
			continue
		}
		for _, m := range methods {
			if _, ok := ops[m]; !ok {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}

	for _, name := range []string{
		"handlers.ErrorResponse",
		"models.Transaction",
		"pagination.PageResponse-models_Transaction",
		"services.SummaryReport",
		"aggregation.BudgetStatus",
	} {
		if _, ok := doc.Definitions[name]; !ok {
			t.Errorf("missing definition %s", name)
		}
	}
}
