package theme

import "testing"

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) = %q", th.Name, got.Name)
		}
	}
}

func TestByNameUnknownFallsBack(t *testing.T) {
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName fallback = %q, want %q", got.Name, FlexokiDark.Name)
	}
}

func TestUniqueThemeNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range All {
		if seen[th.Name] {
			t.Errorf("duplicate theme name %q", th.Name)
		}
		seen[th.Name] = true
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("nord")
	if Active.Name != "nord" {
		t.Errorf("Active = %q, want nord", Active.Name)
	}
}
