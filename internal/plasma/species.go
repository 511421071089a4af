package plasma

import (
	"fmt"
	"strconv"
	"strings"
)

// Species is a charged (or neutral) particle with its derived numeric
// attributes. Values are immutable once resolved.
type Species struct {
	Symbol       string
	ChargeNumber int     // signed multiples of e
	Mass         float64 // kg
}

// Charge returns the signed charge in coulombs.
func (s Species) Charge() float64 {
	return float64(s.ChargeNumber) * ElementaryCharge
}

func (s Species) IsElectron() bool {
	return s.Symbol == "e-"
}

// IsIon reports whether the species is a charged particle other than
// the electron.
func (s Species) IsIon() bool {
	return s.ChargeNumber != 0 && !s.IsElectron()
}

// Electron returns the electron species.
func Electron() Species {
	return Species{Symbol: "e-", ChargeNumber: -1, Mass: ElectronMass}
}

// Atomic masses in unified atomic mass units, keyed by nuclide.
var nuclideMasses = map[string]float64{
	"H-1":   1.00782503207,
	"H-2":   2.0141017778,
	"H-3":   3.0160492777,
	"He-3":  3.0160293191,
	"He-4":  4.00260325415,
	"Li-6":  6.015122887,
	"Li-7":  7.016003434,
	"C-12":  12.0,
	"N-14":  14.0030740048,
	"O-16":  15.9949146196,
	"Ne-20": 19.9924401754,
	"Ar-40": 39.9623831237,
	"Fe-56": 55.9349363,
}

// Most abundant isotope used when only the element is given.
var defaultIsotope = map[string]string{
	"H":  "H-1",
	"He": "He-4",
	"Li": "Li-7",
	"C":  "C-12",
	"N":  "N-14",
	"O":  "O-16",
	"Ne": "Ne-20",
	"Ar": "Ar-40",
	"Fe": "Fe-56",
}

var elementAliases = map[string]string{
	"D": "H-2",
	"T": "H-3",
}

var symbolAliases = map[string]string{
	"p":      "H-1 1+",
	"p+":     "H+",
	"proton": "H-1 1+",
	"alpha":  "He-4 2+",
}

// Lookup resolves a particle symbol to a Species. Accepted forms are
// the electron ("e-"), bare charge suffixes ("H+", "D+", "He-4++") and
// explicit charge counts ("He-4 2+", "O 5+"), plus the aliases "p",
// "proton" and "alpha". Ion masses are the nuclide atomic mass minus
// the removed electrons.
func Lookup(symbol string) (Species, error) {
	s := strings.TrimSpace(symbol)
	switch s {
	case "e-", "e", "electron":
		return Electron(), nil
	}
	if a, ok := symbolAliases[s]; ok {
		s = a
	}

	base, z := splitCharge(s)
	if a, ok := elementAliases[base]; ok {
		base = a
	}
	nuclide := base
	if _, ok := nuclideMasses[nuclide]; !ok {
		d, ok := defaultIsotope[base]
		if !ok {
			return Species{}, fmt.Errorf("plasma: unknown species %q", symbol)
		}
		nuclide = d
	}

	mass := nuclideMasses[nuclide]*AtomicMassUnit - float64(z)*ElectronMass
	return Species{Symbol: s, ChargeNumber: z, Mass: mass}, nil
}

// MustLookup is Lookup for symbols known at compile time; it panics on
// unknown species.
func MustLookup(symbol string) Species {
	sp, err := Lookup(symbol)
	if err != nil {
		panic(err)
	}
	return sp
}

// Known returns the nuclides of the registry in no particular order.
func Known() []string {
	names := make([]string, 0, len(nuclideMasses))
	for name := range nuclideMasses {
		names = append(names, name)
	}
	return names
}

// splitCharge strips a trailing charge designation ("+", "++", "2+",
// "-") and returns the bare nuclide or element with the signed charge
// number. A trailing dash is only a charge when it ends the symbol, so
// isotope dashes ("He-4") pass through untouched.
func splitCharge(s string) (string, int) {
	sign := 0
	switch {
	case strings.HasSuffix(s, "+"):
		sign = 1
	case strings.HasSuffix(s, "-"):
		sign = -1
	default:
		return s, 0
	}

	ch := s[len(s)-1]
	run := 0
	for run < len(s) && s[len(s)-1-run] == ch {
		run++
	}
	rest := s[:len(s)-run]
	mag := run

	// Explicit count form, e.g. "He-4 2+".
	if run == 1 {
		i := len(rest)
		for i > 0 && rest[i-1] >= '0' && rest[i-1] <= '9' {
			i--
		}
		if i < len(rest) && i > 0 && rest[i-1] == ' ' {
			if m, err := strconv.Atoi(rest[i:]); err == nil {
				mag = m
				rest = rest[:i-1]
			}
		}
	}

	return strings.TrimSpace(rest), sign * mag
}
