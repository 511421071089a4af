package plasma

import "math"

// PlasmaFrequency returns the angular plasma frequency of a species at
// number density n (m^-3), in rad/s.
//
//	w_p = sqrt(n q^2 / (eps0 m))
func PlasmaFrequency(n float64, s Species) float64 {
	q := s.Charge()
	return math.Sqrt(n * q * q / (VacuumPermittivity * s.Mass))
}

// Gyrofrequency returns the angular cyclotron frequency of a species in
// a magnetic field of magnitude b (T), in rad/s. The result is unsigned
// unless signed is true, in which case it carries the sign of the
// charge.
//
//	w_c = q B / m
func Gyrofrequency(b float64, s Species, signed bool) float64 {
	wc := s.Charge() * b / s.Mass
	if signed {
		return wc
	}
	return math.Abs(wc)
}
