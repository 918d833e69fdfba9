package division

import "testing"

func TestResolveLabel(t *testing.T) {
	t.Parallel()

	divisions := []Division{
		{Conference: "Northern", Name: "Coastal", Abbreviation: "NC"},
		{Conference: "Northern", Name: "Inland", Abbreviation: "NI"},
		{Conference: "Southern", Name: "Coastal", Abbreviation: "SC"},
	}

	got, ok := ResolveLabel("Northern Inland", divisions)
	if !ok || got.Abbreviation != "NI" {
		t.Fatalf("got %+v ok=%v, want NI", got, ok)
	}

	// Exact match only; no fuzzy or case-insensitive fallback.
	if _, ok := ResolveLabel("northern inland", divisions); ok {
		t.Fatal("case-insensitive label should not resolve")
	}

	zero, ok := ResolveLabel("Exhibition", divisions)
	if ok {
		t.Fatal("unknown label resolved")
	}
	if zero.Abbreviation != "" || zero.Conference != "" || zero.Name != "" {
		t.Fatalf("miss should yield zero Division, got %+v", zero)
	}
}

func TestResolveLabel_FirstMatchWins(t *testing.T) {
	t.Parallel()

	divisions := []Division{
		{Conference: "East", Name: "Bay", Abbreviation: "E1"},
		{Conference: "East", Name: "Bay", Abbreviation: "E2"},
	}

	got, _ := ResolveLabel("East Bay", divisions)
	if got.Abbreviation != "E1" {
		t.Fatalf("got %q, want first match E1", got.Abbreviation)
	}
}
