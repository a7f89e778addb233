package cmd

import "testing"

func TestFindRecord(t *testing.T) {
	doc := map[string]any{
		"investments": []any{
			map[string]any{"name": "Brokerage", "balance": 10000.0},
			map[string]any{"name": "Savings", "balance": 2000.0},
		},
	}

	record, err := findRecord(doc, "investments", "Savings")
	if err != nil {
		t.Fatalf("findRecord() error = %v", err)
	}
	if got := record["balance"].(float64); got != 2000.0 {
		t.Errorf("findRecord() balance = %v, want 2000", got)
	}

	if _, err := findRecord(doc, "investments", "Checking"); err == nil {
		t.Error("findRecord() expected error for unknown name")
	}
	if _, err := findRecord(doc, "expenses", "Groceries"); err == nil {
		t.Error("findRecord() expected error for missing section")
	}
}
