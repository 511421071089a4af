// Package viz provides an interactive terminal explorer for dispersion
// sweeps. The bubbletea model recomputes the Stix solution whenever the
// wave frequency or field strength is adjusted and plots the selected
// root branch against propagation angle.
package viz
