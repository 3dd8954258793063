package services

import (
	"testing"

	"voyage-routing-service/internal/domain"
)

func TestFindShortestPrefersFewerHopsOverLowerFare(t *testing.T) {
	g := buildTestGraph()

	result := FindShortest(g, "SIN", "LAX", "01/06/2026", nil)

	if !result.Found {
		t.Fatalf("expected a path to be found, got diagnostic %q", result.Diagnostic)
	}
	wantPath := []string{"SIN", "LAX"}
	if len(result.Path) != len(wantPath) || result.Path[1] != "LAX" {
		t.Fatalf("path = %v, want direct single-hop %v", result.Path, wantPath)
	}
	if result.TotalCost != 500 {
		t.Errorf("TotalCost = %d, want 500 (direct leg fare)", result.TotalCost)
	}
}

func TestFindShortestOriginEqualsDestination(t *testing.T) {
	g := buildTestGraph()

	result := FindShortest(g, "SIN", "SIN", "01/06/2026", nil)
	if !result.Found || len(result.Path) != 1 {
		t.Fatalf("expected trivial path, got %+v", result)
	}
}

func TestFindShortestUnknownPorts(t *testing.T) {
	g := buildTestGraph()

	if result := FindShortest(g, "ZZZ", "LAX", "01/06/2026", nil); result.Found {
		t.Errorf("expected unknown origin to fail")
	}
}

func TestFindShortestCarrierWhitelistForcesMultiHop(t *testing.T) {
	g := buildTestGraph()
	prefs := &domain.PreferenceFilter{
		Carriers: map[string]struct{}{"Maersk": {}},
	}

	result := FindShortest(g, "SIN", "LAX", "01/06/2026", prefs)

	if !result.Found {
		t.Fatalf("expected a Maersk-only path to be found")
	}
	if len(result.Path) != 3 {
		t.Fatalf("path = %v, want a 2-hop Maersk-only path", result.Path)
	}
}
