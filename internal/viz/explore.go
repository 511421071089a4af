package viz

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/coldwave/internal/dispersion"
	"github.com/san-kum/coldwave/internal/plasma"
)

const (
	plotWidth  = 80
	plotHeight = 16
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model holds the scenario under exploration and the last solved sweep.
type Model struct {
	b      float64
	omega  float64
	ions   []plasma.Species
	dens   []float64
	thetas []float64

	branch int // root index 0..3
	result *dispersion.Result
	errMsg string
}

// NewModel builds an explorer over a fixed angle sweep.
func NewModel(b, omega float64, ions []plasma.Species, densities, thetas []float64) Model {
	m := Model{
		b:      b,
		omega:  omega,
		ions:   ions,
		dens:   densities,
		thetas: thetas,
		branch: 3,
	}
	m.solve()
	return m
}

func (m *Model) solve() {
	res, err := dispersion.Solve(dispersion.Input{
		B:         m.b,
		Omegas:    []float64{m.omega},
		Ions:      m.ions,
		Densities: m.dens,
		Thetas:    m.thetas,
	})
	if err != nil {
		m.errMsg = err.Error()
		m.result = nil
		return
	}
	m.errMsg = ""
	m.result = res
}

func (m Model) Init() tea.Cmd { return nil }

// Update adjusts the scenario and re-solves on every change.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.omega *= 1.25
		m.solve()
	case "down", "j":
		m.omega /= 1.25
		m.solve()
	case "right", "l":
		m.b *= 2
		m.solve()
	case "left", "h":
		m.b /= 2
		m.solve()
	case "tab":
		m.branch = (m.branch + 1) % 4
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("coldwave explorer"))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("solve failed: " + m.errMsg))
		b.WriteString(helpStyle.Render("\nup/down omega  left/right B  q quit"))
		return b.String()
	}

	data := make([]float64, len(m.thetas))
	for j := range m.thetas {
		k := m.result.At(0, j).K[m.branch]
		mag := cmplx.Abs(k)
		if mag > 0 && !math.IsInf(mag, 0) {
			data[j] = math.Log10(mag)
		}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("log10 |k| of branch %d vs angle (0..%0.f deg)",
			m.branch, m.thetas[len(m.thetas)-1]*180/math.Pi)),
	)
	b.WriteString(graphStyle.Render(graph))
	b.WriteString("\n")

	mid := m.result.At(0, len(m.thetas)/2)
	stats := []string{
		statLine("omega", fmt.Sprintf("%.4g rad/s", m.omega)),
		statLine("B", fmt.Sprintf("%.4g T", m.b)),
		statLine("ions", ionList(m.ions)),
		statLine("theta mid", fmt.Sprintf("%.1f deg", mid.Theta*180/math.Pi)),
		statLine("k mid", fmt.Sprintf("%.4g%+.4gi m^-1", real(mid.K[m.branch]), imag(mid.K[m.branch]))),
	}
	if !mid.Finite() {
		stats = append(stats, errorStyle.Render("non-finite roots at mid sweep"))
	}
	b.WriteString(statsStyle.Render(strings.Join(stats, "\n")))

	b.WriteString(helpStyle.Render("\nup/down omega x1.25  left/right B x2  tab branch  q quit"))
	return b.String()
}

func statLine(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func ionList(ions []plasma.Species) string {
	symbols := make([]string, len(ions))
	for i, sp := range ions {
		symbols[i] = sp.Symbol
	}
	return strings.Join(symbols, ", ")
}
