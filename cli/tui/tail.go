package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pollInterval is how often the viewer re-reads the log file. The launcher
// log files are append-only and modest in size, so a full re-read is fine.
const pollInterval = 500 * time.Millisecond

type keyMap struct {
	Quit   key.Binding
	Follow key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Follow: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "toggle follow"),
	),
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// TailModel is a Bubble Tea model that follows an append-only log file.
type TailModel struct {
	path     string
	viewport viewport.Model
	ready    bool
	follow   bool
	readErr  error
	quitting bool
}

// NewTailModel creates a tail viewer for the given log file.
// Follow mode starts enabled.
func NewTailModel(path string) TailModel {
	return TailModel{path: path, follow: true}
}

// Init implements tea.Model.
func (m TailModel) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m TailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
			m.refresh()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Follow):
			m.follow = !m.follow
			if m.follow {
				m.viewport.GotoBottom()
			}
			return m, nil
		}

	case tickMsg:
		if m.ready {
			m.refresh()
		}
		return m, tick()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-reads the log file into the viewport.
func (m *TailModel) refresh() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		m.readErr = err
		return
	}
	m.readErr = nil
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(string(data))
	if m.follow || atBottom {
		m.viewport.GotoBottom()
	}
}

// View implements tea.Model.
func (m TailModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	header := TitleStyle.Render(m.path)
	body := m.viewport.View()
	if m.readErr != nil {
		body = ErrorStyle.Render(fmt.Sprintf("cannot read %s: %v", m.path, m.readErr))
	}

	followState := FollowOffStyle.Render("follow: off")
	if m.follow {
		followState = FollowOnStyle.Render("follow: on")
	}
	footer := HelpStyle.Render("q quit · f follow · ↑/↓ scroll") + "  " + followState

	return header + "\n" + body + "\n" + footer
}

// Run starts the tail viewer for the given log file and blocks until quit.
func Run(path string) error {
	_, err := tea.NewProgram(NewTailModel(path), tea.WithAltScreen()).Run()
	return err
}
