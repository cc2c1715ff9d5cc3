package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridviz/grid"
	"github.com/katalvlaran/gridviz/render"
	"github.com/katalvlaran/gridviz/search"
	"github.com/katalvlaran/gridviz/session"
)

const (
	sizeStep = 5
	fillStep = 0.05
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func newPlayCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Animate the search in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := gf.loadConfig(cmd)
			if err != nil {
				return err
			}
			// The TUI owns the terminal, so logs go nowhere unless --log-file is set.
			logger, closeLog, err := gf.newLogger(cfg, io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			s, stop, err := newSession(cfg, logger)
			if err != nil {
				return err
			}
			defer stop()

			p := tea.NewProgram(newModel(s, render.New()), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(*model); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}

// tickMsg fires once per animation period. gen ties it to the tick chain
// that scheduled it so a resize does not start a second chain.
type tickMsg struct{ gen int }

type model struct {
	s   *session.Session
	r   *render.Renderer
	gen int
	err error

	frame   frame
	renders int
}

// frame caches the painted grid together with the revision it shows.
type frame struct {
	g    *grid.Grid
	rev  uint64
	snap *grid.Grid
	body string
}

// gridView repaints only when the grid was replaced or a cell changed
// since the cached frame.
func (m *model) gridView() string {
	g := m.s.Grid()
	if m.frame.g == g {
		if m.frame.rev == g.Revision() {
			return m.frame.body
		}
		if dirty, err := g.Changed(m.frame.snap); err == nil && len(dirty) == 0 {
			m.frame.rev = g.Revision()
			return m.frame.body
		}
	}
	m.frame = frame{g: g, rev: g.Revision(), snap: g.Snapshot(), body: m.r.Grid(g)}
	m.renders++
	return m.frame.body
}

func newModel(s *session.Session, r *render.Renderer) *model {
	return &model{s: s, r: r}
}

func (m *model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.s.StepDelay(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m *model) Init() tea.Cmd { return m.tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if !m.s.Paused {
			m.s.Step()
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	}
	return m, nil
}

func (m *model) handleKey(key string) tea.Cmd {
	var err error
	switch key {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case " ":
		m.s.TogglePaused()
	case "n":
		if m.s.Paused {
			m.s.Step()
		}
	case "r":
		err = m.s.Regenerate()
	case "c":
		err = m.s.Restart()
	case "+", "=":
		err = m.s.SetSize(m.s.Size() + sizeStep)
	case "-", "_":
		err = m.s.SetSize(m.s.Size() - sizeStep)
	case "]":
		err = m.s.SetFillPercent(m.s.FillPercent() + fillStep)
	case "[":
		err = m.s.SetFillPercent(m.s.FillPercent() - fillStep)
	case "b":
		err = m.s.SetStrategy(search.KindBFS)
	default:
		return nil
	}
	if err != nil {
		m.err = err
		return tea.Quit
	}
	// The step delay depends on the size, so restart the tick chain.
	m.gen++
	return m.tick()
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(m.gridView())
	b.WriteByte('\n')
	b.WriteString(m.r.Status(m.s.Kind(), m.s.Status(), m.s.Size(), m.s.FillPercent(), m.s.Paused))
	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(fmt.Sprintf("run %s  space pause · n step · r regenerate · c restart · b bfs · +/- size · [/] fill · q quit",
		m.s.RunID().String()[:8])))
	return b.String()
}
