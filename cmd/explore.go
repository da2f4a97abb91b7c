package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spacetime/frw"
	"github.com/katalvlaran/spacetime/render"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [topology]",
	Short: "Interactively browse the FRW metrics",
	Long: `Explore opens a full-screen view of the metric tensor. Arrow keys
cycle through the topologies, z toggles compact zeros, x switches between
the terminal grid and raw LaTeX.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

func init() {
	addMetricFlags(exploreCmd)
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	top, err := resolveTopology(args)
	if err != nil {
		return err
	}
	fopts, err := metricOptions(cmd)
	if err != nil {
		return err
	}

	m := newExploreModel(top, fopts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Explorer styles.
var (
	styleTab = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8C8C8C")).
			Padding(0, 1)

	styleTabActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00BFFF")).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	styleLine = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))

	styleFooter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#636363"))
)

// exploreModel is the bubbletea model of the explorer: the topology list,
// the active index and the display toggles.
type exploreModel struct {
	topologies []frw.Topology
	idx        int
	opts       []frw.Option
	latex      bool
	compact    bool
}

func newExploreModel(start frw.Topology, opts []frw.Option) exploreModel {
	tops := frw.Topologies()
	idx := 0
	for i, t := range tops {
		if t == start {
			idx = i
			break
		}
	}
	return exploreModel{topologies: tops, idx: idx, opts: opts, compact: true}
}

func (m exploreModel) Init() tea.Cmd { return nil }

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.idx = (m.idx + len(m.topologies) - 1) % len(m.topologies)
	case "right", "l", "tab":
		m.idx = (m.idx + 1) % len(m.topologies)
	case "x":
		m.latex = !m.latex
	case "z":
		m.compact = !m.compact
	}
	return m, nil
}

func (m exploreModel) View() string {
	top := m.topologies[m.idx]

	tabs := make([]string, len(m.topologies))
	for i, t := range m.topologies {
		if i == m.idx {
			tabs[i] = styleTabActive.Render(t.String())
		} else {
			tabs[i] = styleTab.Render(t.String())
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	g, err := frw.Metric(top, m.opts...)
	if err != nil {
		return header + "\n\n" + err.Error() + "\n"
	}

	format := render.FormatTerminal
	if m.latex {
		format = render.FormatLaTeX
	}
	ropts := []render.Option{render.WithFormat(format)}
	if m.compact && !m.latex {
		ropts = append(ropts, render.WithCompactZeros())
	}
	grid, err := render.Matrix(g, ropts...)
	if err != nil {
		return header + "\n\n" + err.Error() + "\n"
	}

	ds2, err := render.LineElement(g)
	if err != nil {
		return header + "\n\n" + err.Error() + "\n"
	}

	footer := styleFooter.Render("←/→ topology · x latex · z zeros · q quit")

	return header + "\n\n" + grid + "\n\n" + styleLine.Render(ds2) + "\n\n" + footer + "\n"
}
