package services

import (
	"testing"

	"voyage-routing-service/internal/domain"
)

func TestFindMultiLegConcatenatesSegmentsWithJoinDedup(t *testing.T) {
	g := buildTestGraph()

	result := FindMultiLeg(g, "SIN", []string{"HKG"}, "LAX", "01/06/2026")

	if !result.Found {
		t.Fatalf("expected multi-leg path to be found, got diagnostic %q", result.Diagnostic)
	}
	wantPath := []string{"SIN", "HKG", "LAX"}
	if len(result.Path) != len(wantPath) {
		t.Fatalf("path = %v, want %v (no duplicated join port)", result.Path, wantPath)
	}
	for i, p := range wantPath {
		if result.Path[i] != p {
			t.Fatalf("path = %v, want %v", result.Path, wantPath)
		}
	}
	if len(result.Legs) != 2 {
		t.Fatalf("expected 2 concatenated legs, got %d", len(result.Legs))
	}
}

func TestFindMultiLegFailsIfAnySegmentFails(t *testing.T) {
	g := buildTestGraph()
	g.AddPort(domain.Port{Name: "UNREACHABLE", DailyCharge: 10})

	result := FindMultiLeg(g, "SIN", []string{"UNREACHABLE"}, "LAX", "01/06/2026")
	if result.Found {
		t.Fatalf("expected multi-leg request to fail when a segment is infeasible")
	}
}

func TestFindMultiLegNoIntermediates(t *testing.T) {
	g := buildTestGraph()

	result := FindMultiLeg(g, "SIN", nil, "LAX", "01/06/2026")
	if !result.Found {
		t.Fatalf("expected a direct single-segment multi-leg request to succeed")
	}
}
