package services

import (
	"testing"

	"voyage-routing-service/internal/domain"
)

func buildTestGraph() *domain.Graph {
	g := domain.NewGraph()
	g.AddPort(domain.Port{Name: "SIN", DailyCharge: 50})
	g.AddPort(domain.Port{Name: "HKG", DailyCharge: 40})
	g.AddPort(domain.Port{Name: "LAX", DailyCharge: 60})
	g.AddPort(domain.Port{Name: "NYC", DailyCharge: 70})

	g.AddLeg(domain.Leg{Origin: "SIN", Destination: "HKG", Date: "01/06/2026", DepartureTime: "08:00", ArrivalTime: "14:00", Fare: 100, Carrier: "Maersk"})
	g.AddLeg(domain.Leg{Origin: "HKG", Destination: "LAX", Date: "01/06/2026", DepartureTime: "18:00", ArrivalTime: "22:00", Fare: 200, Carrier: "Maersk"})
	g.AddLeg(domain.Leg{Origin: "SIN", Destination: "LAX", Date: "01/06/2026", DepartureTime: "09:00", ArrivalTime: "23:00", Fare: 500, Carrier: "Evergreen"})
	g.AddLeg(domain.Leg{Origin: "LAX", Destination: "NYC", Date: "03/06/2026", DepartureTime: "08:00", ArrivalTime: "16:00", Fare: 150, Carrier: "Maersk"})

	return g
}

func TestFindCheapestPrefersLowerFarePathOverDirect(t *testing.T) {
	g := buildTestGraph()

	result := FindCheapest(g, "SIN", "LAX", "01/06/2026", nil)

	if !result.Found {
		t.Fatalf("expected a path to be found, got diagnostic %q", result.Diagnostic)
	}
	wantPath := []string{"SIN", "HKG", "LAX"}
	if len(result.Path) != len(wantPath) {
		t.Fatalf("path = %v, want %v", result.Path, wantPath)
	}
	for i, p := range wantPath {
		if result.Path[i] != p {
			t.Fatalf("path = %v, want %v", result.Path, wantPath)
		}
	}
	if result.TotalCost != 300 {
		t.Errorf("TotalCost = %d, want 300", result.TotalCost)
	}
}

func TestFindCheapestOriginEqualsDestination(t *testing.T) {
	g := buildTestGraph()

	result := FindCheapest(g, "SIN", "SIN", "01/06/2026", nil)

	if !result.Found {
		t.Fatalf("expected trivial path to be found")
	}
	if len(result.Path) != 1 || result.Path[0] != "SIN" {
		t.Fatalf("path = %v, want [SIN]", result.Path)
	}
	if result.TotalCost != 0 || result.TotalHours != 0 {
		t.Errorf("expected zero cost/hours for trivial path, got cost=%d hours=%d", result.TotalCost, result.TotalHours)
	}
}

func TestFindCheapestUnknownPorts(t *testing.T) {
	g := buildTestGraph()

	if result := FindCheapest(g, "ZZZ", "LAX", "01/06/2026", nil); result.Found {
		t.Errorf("expected unknown origin to fail, got a path")
	}
	if result := FindCheapest(g, "SIN", "ZZZ", "01/06/2026", nil); result.Found {
		t.Errorf("expected unknown destination to fail, got a path")
	}
}

func TestFindCheapestNoOutboundLegs(t *testing.T) {
	g := buildTestGraph()
	g.AddPort(domain.Port{Name: "ISOLATED", DailyCharge: 10})

	result := FindCheapest(g, "ISOLATED", "LAX", "01/06/2026", nil)
	if result.Found {
		t.Fatalf("expected no path from a port with no outbound legs")
	}
}

func TestFindCheapestNoFeasiblePath(t *testing.T) {
	g := buildTestGraph()
	g.AddPort(domain.Port{Name: "UNREACHABLE", DailyCharge: 10})

	result := FindCheapest(g, "SIN", "UNREACHABLE", "01/06/2026", nil)
	if result.Found {
		t.Fatalf("expected no feasible path to an unreachable port")
	}
}

func TestFindCheapestCarrierWhitelistExcludesDirectButPricierRoute(t *testing.T) {
	g := buildTestGraph()
	prefs := &domain.PreferenceFilter{
		Carriers: map[string]struct{}{"Evergreen": {}},
	}

	result := FindCheapest(g, "SIN", "LAX", "01/06/2026", prefs)

	if !result.Found {
		t.Fatalf("expected Evergreen-only path to be found")
	}
	if len(result.Path) != 2 || result.Path[1] != "LAX" {
		t.Fatalf("path = %v, want direct SIN -> LAX", result.Path)
	}
	if result.TotalCost != 500 {
		t.Errorf("TotalCost = %d, want 500", result.TotalCost)
	}
}

func TestFindCheapestLayoverChargeAppliesAcrossDays(t *testing.T) {
	g := buildTestGraph()

	result := FindCheapest(g, "SIN", "NYC", "01/06/2026", nil)

	if !result.Found {
		t.Fatalf("expected a multi-leg path to NYC")
	}
	if len(result.Layovers) != 2 {
		t.Fatalf("expected 2 layovers, got %d", len(result.Layovers))
	}
	foundCharge := false
	for _, lo := range result.Layovers {
		if lo.PortCharge > 0 {
			foundCharge = true
		}
	}
	if !foundCharge {
		t.Errorf("expected at least one layover to incur a port charge crossing days")
	}
}

func TestFindCheapestRequiredPortWarningDoesNotHidePath(t *testing.T) {
	g := buildTestGraph()
	prefs := &domain.PreferenceFilter{
		RequiredPorts: map[string]struct{}{"NYC": {}},
	}

	result := FindCheapest(g, "SIN", "LAX", "01/06/2026", prefs)

	if !result.Found {
		t.Fatalf("expected path despite unmet required-port preference")
	}
	if len(result.Warnings) == 0 {
		t.Errorf("expected a warning about the unvisited required port")
	}
}
