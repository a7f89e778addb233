package finplan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSampleProfile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	raw, err := json.Marshal(sampleDocument())
	if err != nil {
		t.Fatalf("marshal sample document: %v", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatalf("write sample profile: %v", err)
	}
	return path
}

func TestLoadPlan(t *testing.T) {
	path := writeSampleProfile(t)
	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan() error: %v", err)
	}
	if plan.Person2.Name != "Sam" {
		t.Errorf("Person2.Name = %q, want Sam", plan.Person2.Name)
	}
}

func TestLoadDocument_Missing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected an error for a missing profile file")
	}
}

func TestLoadDocument_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDocument(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestSavePlan_Canonical(t *testing.T) {
	path := writeSampleProfile(t)
	plan, err := LoadPlan(path)
	if err != nil {
		t.Fatalf("LoadPlan() error: %v", err)
	}
	out := filepath.Join(filepath.Dir(path), "canonical.json")
	if err := SavePlan(out, plan); err != nil {
		t.Fatalf("SavePlan() error: %v", err)
	}
	again, err := LoadPlan(out)
	if err != nil {
		t.Fatalf("LoadPlan() on saved plan: %v", err)
	}
	if again.ProjectionYearsMain != plan.ProjectionYearsMain {
		t.Errorf("ProjectionYearsMain = %d, want %d", again.ProjectionYearsMain, plan.ProjectionYearsMain)
	}
}

func TestTouch(t *testing.T) {
	record := map[string]any{"name": "Brokerage", "balance": 1.0}
	Touch(record)
	stamp, ok := record["updated_at"].(string)
	if !ok {
		t.Fatalf("updated_at = %v, want an RFC3339 string", record["updated_at"])
	}
	when, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		t.Fatalf("updated_at %q is not RFC3339: %v", stamp, err)
	}
	if when.Location() != time.UTC {
		t.Errorf("updated_at %q is not UTC", stamp)
	}
}
