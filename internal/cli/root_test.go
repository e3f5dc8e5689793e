package cli

import "testing"

func TestEnvOr(t *testing.T) {
	t.Setenv("FLEETPLAN_TEST_KEY", "set")
	if got := envOr("FLEETPLAN_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("envOr = %q, want %q", got, "set")
	}
	if got := envOr("FLEETPLAN_TEST_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("envOr = %q, want %q", got, "fallback")
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("FLEETPLAN_DB", "/tmp/custom.db")
	if got := defaultDBPath(); got != "/tmp/custom.db" {
		t.Fatalf("defaultDBPath = %q, want env override", got)
	}
}
