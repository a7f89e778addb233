package cmd

import "testing"

func TestResolveHorizon(t *testing.T) {
	old := appConfig
	appConfig = &Config{Horizon: 12}
	defer func() { appConfig = old }()

	if got := resolveHorizon(horizonUnset); got != 12 {
		t.Errorf("resolveHorizon(unset) = %d, want the configured 12", got)
	}
	// 0 is a real request for a baseline-only series, not "use the default".
	if got := resolveHorizon(0); got != 0 {
		t.Errorf("resolveHorizon(0) = %d, want 0", got)
	}
	if got := resolveHorizon(7); got != 7 {
		t.Errorf("resolveHorizon(7) = %d, want 7", got)
	}
}
