// Package tui drives a model from the terminal: the keyboard moves the
// controls and the output is redrawn as an ASCII plot after every change.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/AnkushinDaniil/fourier/entity"
	"github.com/AnkushinDaniil/fourier/entity/kind"
	"github.com/AnkushinDaniil/fourier/entity/parameters"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	barWidth      = 20
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).MarginTop(1)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	controlsStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240")).PaddingTop(1)
)

type control int

const (
	termsControl control = iota
	frequencyControl
	amplitudeControl
	kindControl
	controlCount
)

func (c control) String() string {
	return [...]string{"Terms", "Frequency", "Amplitude", "Wave"}[c]
}

// Model is the bubbletea model wrapping an entity.Model.
type Model struct {
	model    *entity.Model
	selected control
	status   string
	width    int
	height   int
}

func New(m *entity.Model) Model {
	return Model{
		model:  m,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func Run(m *entity.Model) error {
	if _, err := tea.NewProgram(New(m), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run terminal ui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down", "j":
			m.selected = (m.selected + 1) % controlCount
		case "shift+tab", "up", "k":
			m.selected = (m.selected + controlCount - 1) % controlCount
		case "right", "l", "+", "=":
			m.adjust(1)
		case "left", "h", "-", "_":
			m.adjust(-1)
		case "1", "2", "3", "4":
			m.model.SetKind(kind.All[msg.String()[0]-'1'])
			m.status = ""
		case "p":
			m.status = m.model.Populate()
		case "r":
			m.model.Reset()
			m.status = ""
		}
	}
	return m, nil
}

// adjust moves the selected control one step in dir, clamped to its range.
func (m *Model) adjust(dir int) {
	p := m.model.Params()
	switch m.selected {
	case termsControl:
		r := parameters.TermsRange
		m.model.SetTerms(int(r.Clamp(float64(p.Terms) + float64(dir)*r.Step)))
	case frequencyControl:
		r := parameters.FrequencyRange
		m.model.SetFrequency(r.Clamp(roundTenth(p.Frequency + float64(dir)*r.Step)))
	case amplitudeControl:
		r := parameters.AmplitudeRange
		m.model.SetAmplitude(r.Clamp(roundTenth(p.Amplitude + float64(dir)*r.Step)))
	case kindControl:
		if dir > 0 {
			m.model.SetKind(p.Kind.Next())
		} else {
			m.model.SetKind(p.Kind.Prev())
		}
	}
	m.status = ""
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Fourier Series: "+m.model.Title()) + "\n")
	s.WriteString(graphStyle.Render(m.plot()) + "\n")

	var c strings.Builder
	p := m.model.Params()
	for i := control(0); i < controlCount; i++ {
		var line string
		switch i {
		case termsControl:
			line = fmt.Sprintf("%-10s %s %d", i, bar(float64(p.Terms), parameters.TermsRange), p.Terms)
		case frequencyControl:
			line = fmt.Sprintf("%-10s %s %.1f", i, bar(p.Frequency, parameters.FrequencyRange), p.Frequency)
		case amplitudeControl:
			line = fmt.Sprintf("%-10s %s %.1f", i, bar(p.Amplitude, parameters.AmplitudeRange), p.Amplitude)
		case kindControl:
			line = fmt.Sprintf("%-10s %s", i, kinds(p.Kind))
		}
		if i == m.selected {
			c.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			c.WriteString(labelStyle.Render("  "+line) + "\n")
		}
	}
	s.WriteString(controlsStyle.Render(c.String()))

	if m.status != "" {
		s.WriteString("\n" + statusStyle.Render(m.status))
	}
	s.WriteString("\n" + helpStyle.Render("tab/↑↓: select  ←→: adjust  1-4: wave  p: populate  r: reset  q: quit"))
	return s.String()
}

func (m Model) plot() string {
	width := m.width - 12
	if width < 20 {
		width = 20
	}
	height := m.height - 14
	if height < 5 {
		height = 5
	}
	return asciigraph.Plot(m.model.Output(),
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(-2),
		asciigraph.UpperBound(2),
		asciigraph.Precision(1),
	)
}

func bar(v float64, r parameters.Range) string {
	filled := int(math.Round((v - r.Min) / (r.Max - r.Min) * barWidth))
	filled = max(0, min(barWidth, filled))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func kinds(current kind.Kind) string {
	names := make([]string, len(kind.All))
	for i, k := range kind.All {
		if k == current {
			names[i] = "(•) " + k.String()
		} else {
			names[i] = "( ) " + k.String()
		}
	}
	return strings.Join(names, "  ")
}
