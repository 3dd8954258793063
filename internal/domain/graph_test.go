package domain

import "testing"

func TestGraphAddLegUnknownOriginDropped(t *testing.T) {
	g := NewGraph()
	g.AddPort(Port{Name: "A"})

	// B is never registered as a port.
	g.AddLeg(Leg{Origin: "B", Destination: "A", Date: "01/05/2025"})

	if len(g.LegsFrom("B")) != 0 {
		t.Errorf("expected leg from unknown origin to be dropped")
	}
}

func TestGraphAddLegUnknownDestinationAccepted(t *testing.T) {
	g := NewGraph()
	g.AddPort(Port{Name: "A"})

	// C is never registered, but it's fine as a destination: resolved at
	// query time.
	g.AddLeg(Leg{Origin: "A", Destination: "C", Date: "01/05/2025"})

	if len(g.LegsFrom("A")) != 1 {
		t.Fatalf("expected leg to be accepted")
	}
}

func TestGraphAddPortNoOpOnDuplicate(t *testing.T) {
	g := NewGraph()
	g.AddPort(Port{Name: "A", DailyCharge: 10})
	g.AddPort(Port{Name: "A", DailyCharge: 999})

	p, ok := g.Port("A")
	if !ok || p.DailyCharge != 10 {
		t.Errorf("expected first registration to win, got %+v", p)
	}
}

func TestGraphConnectingLegsFromExcludesPastDated(t *testing.T) {
	g := NewGraph()
	g.AddPort(Port{Name: "A"})
	g.AddLeg(Leg{Origin: "A", Destination: "B", Date: "01/05/2025", DepartureTime: "08:00"})
	g.AddLeg(Leg{Origin: "A", Destination: "B", Date: "02/05/2025", DepartureTime: "08:00"})

	legs := g.ConnectingLegsFrom("A", "02/05/2025", "00:00")
	if len(legs) != 1 || legs[0].Date != "02/05/2025" {
		t.Errorf("expected only the 02/05 leg, got %+v", legs)
	}
}

func TestGraphConnectingLegsFromSameDateTimeBoundary(t *testing.T) {
	g := NewGraph()
	g.AddPort(Port{Name: "A"})
	g.AddLeg(Leg{Origin: "A", Destination: "B", Date: "01/05/2025", DepartureTime: "08:00"})

	// Equal time should be included (>= semantics, not strictly after).
	legs := g.ConnectingLegsFrom("A", "01/05/2025", "08:00")
	if len(legs) != 1 {
		t.Errorf("expected leg departing exactly at the earliest time to be included")
	}

	legs = g.ConnectingLegsFrom("A", "01/05/2025", "08:01")
	if len(legs) != 0 {
		t.Errorf("expected leg departing one minute earlier to be excluded")
	}
}
