package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/coldwave/internal/collisions"
	"github.com/san-kum/coldwave/internal/config"
	"github.com/san-kum/coldwave/internal/dispersion"
	"github.com/san-kum/coldwave/internal/plasma"
	"github.com/san-kum/coldwave/internal/viz"
	"github.com/spf13/cobra"
)

var (
	bField    float64
	omegas    []float64
	ionFlags  []string
	densities []float64
	thetaDeg  []float64
	// Solve output
	plot       bool
	jsonOut    bool
	branch     int
	configFile string
	preset     string
	// Timescale parameters
	version    string
	temp       float64
	tPar       float64
	tPerp      float64
	tPars      []float64
	tPerps     []float64
	density    float64
	parSpeeds  []float64
	perpSpeeds []float64
	method     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coldwave",
		Short: "cold plasma dispersion and collisional timescales",
	}

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the cold plasma dispersion relation",
		RunE:  runSolve,
	}
	solveCmd.Flags().Float64Var(&bField, "b", config.DefaultBField, "magnetic field (T)")
	solveCmd.Flags().Float64SliceVar(&omegas, "omega", []float64{config.DefaultOmega}, "wave frequencies (rad/s)")
	solveCmd.Flags().StringSliceVar(&ionFlags, "ions", []string{"H+", "He+"}, "ion species")
	solveCmd.Flags().Float64SliceVar(&densities, "density", []float64{4e5, 2e5}, "ion densities (m^-3)")
	solveCmd.Flags().Float64SliceVar(&thetaDeg, "theta", nil, "propagation angles (deg); default 0..90 sweep")
	solveCmd.Flags().BoolVar(&plot, "plot", false, "plot |k| of one branch against angle")
	solveCmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON instead of a table")
	solveCmd.Flags().IntVar(&branch, "branch", 3, "root branch for plotting (0-3)")
	solveCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "scenario preset name")

	timescaleCmd := &cobra.Command{
		Use:   "timescale",
		Short: "ion-ion collisional timescale",
		RunE:  runTimescale,
	}
	timescaleCmd.Flags().StringVar(&version, "version", "2009", "formula version (2009, 2010, 2016)")
	timescaleCmd.Flags().Float64Var(&temp, "temp", 1e5, "scalar temperature (K)")
	timescaleCmd.Flags().Float64Var(&tPar, "t-par", 1e5, "parallel temperature (K)")
	timescaleCmd.Flags().Float64Var(&tPerp, "t-perp", 1e5, "perpendicular temperature (K)")
	timescaleCmd.Flags().Float64SliceVar(&tPars, "t-pars", nil, "per-species parallel temperatures (K)")
	timescaleCmd.Flags().Float64SliceVar(&tPerps, "t-perps", nil, "per-species perpendicular temperatures (K)")
	timescaleCmd.Flags().Float64Var(&density, "density", 1e7, "number density (m^-3)")
	timescaleCmd.Flags().StringSliceVar(&ionFlags, "ions", []string{"p", "p"}, "colliding ion pair")
	timescaleCmd.Flags().Float64SliceVar(&parSpeeds, "par-speeds", []float64{5e4, 5e4}, "parallel thermal speeds (m/s)")
	timescaleCmd.Flags().Float64SliceVar(&perpSpeeds, "perp-speeds", nil, "perpendicular thermal speeds (m/s)")
	timescaleCmd.Flags().StringVar(&method, "method", "classical", "coulomb logarithm method")

	speciesCmd := &cobra.Command{
		Use:   "species",
		Short: "list known particle species",
		RunE:  listSpecies,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive dispersion explorer",
		RunE:  runExplore,
	}
	exploreCmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	exploreCmd.Flags().StringVar(&preset, "preset", "", "scenario preset name")

	rootCmd.AddCommand(solveCmd, timescaleCmd, speciesCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scenario builds a solver input from preset, config file and flags, in
// increasing precedence.
func scenario(cmd *cobra.Command) (dispersion.Input, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return dispersion.Input{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return dispersion.Input{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("b") {
		cfg.BField = bField
	}
	if cmd.Flags().Changed("omega") {
		cfg.Omega = omegas
	}
	if cmd.Flags().Changed("ions") {
		cfg.Ions = ionFlags
	}
	if cmd.Flags().Changed("density") {
		cfg.Density = densities
	}
	if cmd.Flags().Changed("theta") {
		cfg.ThetaDeg = thetaDeg
	}

	return cfg.Input()
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := scenario(cmd)
	if err != nil {
		return err
	}

	result, err := dispersion.Solve(in)
	if err != nil {
		return err
	}

	if jsonOut {
		return writeJSON(result)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "omega\ttheta(deg)\tk1\tk2\tk3\tk4")
	for i, omega := range result.Omegas {
		for j, theta := range result.Thetas {
			sol := result.At(i, j)
			fmt.Fprintf(w, "%.4g\t%.2f\t%s\t%s\t%s\t%s\n",
				omega, theta*180/math.Pi,
				fmtRoot(sol.K[0]), fmtRoot(sol.K[1]), fmtRoot(sol.K[2]), fmtRoot(sol.K[3]))
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot {
		if branch < 0 || branch > 3 {
			return fmt.Errorf("branch must be 0-3, got %d", branch)
		}
		plotBranch(result, branch)
	}
	return nil
}

func fmtRoot(k complex128) string {
	if cmplx.IsInf(k) {
		return "inf"
	}
	if imag(k) == 0 {
		return fmt.Sprintf("%.6g", real(k))
	}
	return fmt.Sprintf("%.6g%+.6gi", real(k), imag(k))
}

// plotBranch draws |k| against angle for the first frequency.
func plotBranch(result *dispersion.Result, branch int) {
	data := make([]float64, len(result.Thetas))
	for j := range result.Thetas {
		mag := cmplx.Abs(result.At(0, j).K[branch])
		if !math.IsInf(mag, 0) {
			data[j] = mag
		}
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(14),
		asciigraph.Width(76),
		asciigraph.Caption(fmt.Sprintf("|k| branch %d, omega=%.4g rad/s", branch, result.Omegas[0])),
	))
}

type solutionJSON struct {
	Omega    float64       `json:"omega"`
	ThetaDeg float64       `json:"theta_deg"`
	K        [4][2]float64 `json:"k"`
}

func writeJSON(result *dispersion.Result) error {
	out := make([]solutionJSON, 0, len(result.Solutions))
	for _, sol := range result.Solutions {
		var roots [4][2]float64
		for i, k := range sol.K {
			roots[i] = [2]float64{real(k), imag(k)}
		}
		out = append(out, solutionJSON{
			Omega:    sol.Omega,
			ThetaDeg: sol.Theta * 180 / math.Pi,
			K:        roots,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runTimescale(cmd *cobra.Command, args []string) error {
	variant, err := collisions.ParseVariant(version)
	if err != nil {
		return err
	}

	ions := make([]plasma.Species, 0, len(ionFlags))
	for _, symbol := range ionFlags {
		sp, err := plasma.Lookup(symbol)
		if err != nil {
			return fmt.Errorf("resolving ion %q: %w", symbol, err)
		}
		ions = append(ions, sp)
	}

	params := collisions.Params{
		T:          temp,
		TPar:       tPar,
		TPerp:      tPerp,
		TPars:      tPars,
		TPerps:     tPerps,
		N:          density,
		Species:    ions,
		ParSpeeds:  parSpeeds,
		PerpSpeeds: perpSpeeds,
		Method:     method,
	}

	nu, err := collisions.Frequency(variant, params)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "variant\t%s\n", variant)
	fmt.Fprintf(w, "pair\t%s\n", strings.Join(ionFlags, " / "))
	fmt.Fprintf(w, "frequency\t%.6g 1/s\n", nu)
	fmt.Fprintf(w, "timescale\t%.6g s\n", 1/nu)
	return w.Flush()
}

func listSpecies(cmd *cobra.Command, args []string) error {
	symbols := plasma.Known()
	sort.Strings(symbols)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "symbol\tcharge\tmass (kg)")
	for _, symbol := range symbols {
		sp, err := plasma.Lookup(symbol)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%+d\t%.6e\n", symbol, sp.ChargeNumber, sp.Mass)
	}
	return w.Flush()
}

func runExplore(cmd *cobra.Command, args []string) error {
	in, err := scenario(cmd)
	if err != nil {
		return err
	}

	model := viz.NewModel(in.B, in.Omegas[0], in.Ions, in.Densities, in.Thetas)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
