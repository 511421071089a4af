// Package plasma provides species resolution and the characteristic
// frequencies of a magnetized plasma.
//
// A [Species] is an immutable value carrying a signed charge number and
// a mass in kilograms. [Lookup] resolves common particle symbols
// ("e-", "p", "D+", "He-4 2+") against a small nuclide table, deriving
// ion masses from atomic masses by subtracting bound electrons.
//
// [PlasmaFrequency] and [Gyrofrequency] return angular frequencies in
// rad/s from SI densities and field magnitudes.
package plasma
