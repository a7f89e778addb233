package finplan

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// LoadDocument reads a profile document from a JSON file. The document is
// the raw nested mapping; use ParsePlan to turn it into a typed plan.
func LoadDocument(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read profile file %q: %w", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("could not decode profile file %q: %w", path, err)
	}
	return doc, nil
}

// SaveDocument writes a profile document back to its JSON file, indented
// for hand editing.
func SaveDocument(path string, doc map[string]any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode profile document: %w", err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("could not write profile file %q: %w", path, err)
	}
	return nil
}

// LoadPlan loads and validates a full financial plan from a profile file.
func LoadPlan(path string) (*FinancePlan, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return ParsePlan(doc)
}

// SavePlan writes the plan back in canonical form: stable field order,
// indented.
func SavePlan(path string, p *FinancePlan) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode plan: %w", err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("could not write profile file %q: %w", path, err)
	}
	return nil
}

// Touch stamps a sub-record of the document with the current UTC time in
// ISO-8601 form. Every edit to a sub-record goes through here before the
// document is saved.
func Touch(record map[string]any) {
	record["updated_at"] = time.Now().UTC().Format(time.RFC3339)
}
