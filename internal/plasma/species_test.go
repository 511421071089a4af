package plasma

import (
	"math"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		symbol string
		charge int
		massU  float64 // approximate, atomic mass units
	}{
		{"e-", -1, 0.000548},
		{"p", 1, 1.00728},
		{"proton", 1, 1.00728},
		{"H+", 1, 1.00728},
		{"D+", 1, 2.01355},
		{"T+", 1, 3.01550},
		{"He+", 1, 4.00205},
		{"He-3 1+", 1, 3.01548},
		{"He-4 2+", 2, 4.00151},
		{"alpha", 2, 4.00151},
		{"O 5+", 5, 15.99217},
		{"He-4++", 2, 4.00151},
	}

	for _, tt := range tests {
		sp, err := Lookup(tt.symbol)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.symbol, err)
		}
		if sp.ChargeNumber != tt.charge {
			t.Errorf("%q: charge %d, want %d", tt.symbol, sp.ChargeNumber, tt.charge)
		}
		gotU := sp.Mass / AtomicMassUnit
		if math.Abs(gotU-tt.massU)/tt.massU > 1e-3 {
			t.Errorf("%q: mass %.5f u, want ~%.5f u", tt.symbol, gotU, tt.massU)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, symbol := range []string{"", "Xx+", "muon", "H 1.5+"} {
		if _, err := Lookup(symbol); err == nil {
			t.Errorf("Lookup(%q): expected error", symbol)
		}
	}
}

func TestIsIon(t *testing.T) {
	if Electron().IsIon() {
		t.Error("electron should not be an ion")
	}
	if !MustLookup("H+").IsIon() {
		t.Error("H+ should be an ion")
	}
	if MustLookup("He-4").IsIon() {
		t.Error("neutral helium should not be an ion")
	}
}

func TestChargeSign(t *testing.T) {
	if q := Electron().Charge(); q >= 0 {
		t.Errorf("electron charge %g, want negative", q)
	}
	if q := MustLookup("He-4 2+").Charge(); math.Abs(q-2*ElementaryCharge) > 1e-25 {
		t.Errorf("alpha charge %g, want %g", q, 2*ElementaryCharge)
	}
}
