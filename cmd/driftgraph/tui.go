package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/driftgraph/frame"
	"github.com/katalvlaran/driftgraph/render"
)

type tickMsg time.Time

// model is the live animation. The driver is stepped from tick messages,
// so bubbletea's single pending tick is the frame scheduler.
type model struct {
	driver   *frame.Driver
	term     *render.Terminal
	interval time.Duration
	last     frame.Frame
	err      error
	width    int
	height   int
	ready    bool
}

func newModel(d *frame.Driver, interval time.Duration) model {
	return model{
		driver:   d,
		term:     render.NewTerminal(0, 0),
		interval: interval,
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tick(m.interval)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.driver.Stop()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.term.Resize(msg.Width, max(1, msg.Height-1))
		if m.driver.State() == frame.Idle {
			size, _ := m.term.Size()
			if err := m.driver.Init(size); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		m.ready = true

	case tickMsg:
		if m.driver.State() != frame.Running {
			return m, tick(m.interval)
		}
		size, _ := m.term.Size()
		f, err := m.driver.Step(size)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if err := m.term.Render(f); err != nil {
			m.err = err
			m.driver.Stop()
			return m, tea.Quit
		}
		m.last = f
		return m, tick(m.interval)
	}

	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Faint(true)
	if m.err != nil {
		return m.term.View() + "\n" + status.Faint(false).Foreground(lipgloss.Color("9")).Render("Error: "+m.err.Error())
	}
	line := fmt.Sprintf("driftgraph  frame %d  nodes %d  edges %d  q quit",
		m.last.Seq, len(m.last.Nodes), len(m.last.Edges))

	return m.term.View() + "\n" + status.Render(line)
}
