package fixtures

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writeFixture: %v", err)
	}
	return path
}

func TestLoadGraphParsesLegsAndCharges(t *testing.T) {
	legPath := writeFixture(t, "legs.txt", ""+
		"SIN HKG 01/06/2026 08:00 14:00 100 Maersk\n"+
		"HKG LAX 01/06/2026 18:00 22:00 200 Maersk\n"+
		"not a valid line\n"+
		"SIN SIN 01/06/2026 08:00 09:00 10 Maersk\n",
	)
	chargePath := writeFixture(t, "charges.txt", ""+
		"SIN 50 1.29 103.85\n"+
		"HKG 40\n"+
		"# comment line\n"+
		"malformed\n",
	)

	graph, err := LoadGraph(NewLegFile(legPath), NewPortChargeFile(chargePath))
	if err != nil {
		t.Fatalf("LoadGraph: %v", err)
	}

	if !graph.HasPort("SIN") || !graph.HasPort("HKG") || !graph.HasPort("LAX") {
		t.Fatalf("expected SIN, HKG, LAX all registered")
	}

	sinPort, _ := graph.Port("SIN")
	if sinPort.DailyCharge != 50 {
		t.Errorf("SIN DailyCharge = %d, want 50 (from charge file, not overridden by leg loading)", sinPort.DailyCharge)
	}
	if sinPort.DisplayLat != 1.29 || sinPort.DisplayLon != 103.85 {
		t.Errorf("SIN coordinates = (%v, %v), want (1.29, 103.85)", sinPort.DisplayLat, sinPort.DisplayLon)
	}

	laxPort, _ := graph.Port("LAX")
	if laxPort.DailyCharge != 0 {
		t.Errorf("LAX DailyCharge = %d, want 0 (no charge entry)", laxPort.DailyCharge)
	}

	legs := graph.LegsFrom("SIN")
	if len(legs) != 1 {
		t.Fatalf("expected the self-loop and malformed lines to be dropped, got %d legs from SIN", len(legs))
	}
}

func TestLoadGraphMissingFileErrors(t *testing.T) {
	_, err := LoadGraph(NewLegFile("/nonexistent/legs.txt"), NewPortChargeFile("/nonexistent/charges.txt"))
	if err == nil {
		t.Fatalf("expected an error for missing fixture files")
	}
}
