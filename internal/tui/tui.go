// Package tui is an interactive demo surface for the desktop core: windows
// rendered as boxes on a cell canvas, dragged and resized with the mouse,
// with the lifecycle on keyboard shortcuts. The same coordinator drives it
// that drives the MCP surface; only the units shrink from pixels to cells.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"deskwm/internal/config"
	"deskwm/internal/desktop"
	"deskwm/internal/registry"
)

const frameInterval = 33 * time.Millisecond

// frameMsg drives gesture coalescing at roughly 30 frames per second.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// model is the root bubbletea model for the demo.
type model struct {
	desktop *desktop.Desktop
	keys    KeyMap

	width  int
	height int

	created int
}

// demoConfig scales the desktop parameters to terminal cells. The status
// line at the bottom plays the role of the reserved chrome strip.
func demoConfig(width, height int) *config.Config {
	return &config.Config{
		ViewportWidth:       width,
		ViewportHeight:      height,
		ChromeHeight:        1,
		SnapThreshold:       2,
		MinWindowWidth:      20,
		MinWindowHeight:     6,
		DefaultWindowWidth:  40,
		DefaultWindowHeight: 12,
		TitleBarHeight:      1,
		HandleSize:          1,
		Cascade: config.Cascade{
			Margin:   2,
			Step:     2,
			Attempts: 10,
		},
	}
}

func newModel() model {
	// Real dimensions arrive with the first WindowSizeMsg.
	cfg := demoConfig(80, 24)
	return model{
		desktop: desktop.New(cfg, nil),
		keys:    DefaultKeyMap,
	}
}

func (m model) Init() tea.Cmd {
	return frameTick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.desktop.SetConfig(demoConfig(msg.Width, msg.Height))
		return m, nil

	case frameMsg:
		m.desktop.Frame()
		return m, frameTick()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.desktop.PointerDown(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.desktop.PointerMove(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.desktop.PointerUp(msg.X, msg.Y)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.New):
		m.created++
		_, _ = m.desktop.CreateWindow(registry.Spec{
			Title:     fmt.Sprintf("window %d", m.created),
			AutoPlace: true,
		})

	case key.Matches(msg, k.Close):
		_ = m.desktop.CloseFocused()

	case key.Matches(msg, k.Minimize):
		_ = m.desktop.MinimizeFocused()

	case key.Matches(msg, k.Maximize):
		_ = m.desktop.ToggleMaximizeFocused()

	case key.Matches(msg, k.CycleNext):
		_ = m.desktop.CycleFocus(true)

	case key.Matches(msg, k.CyclePrev):
		_ = m.desktop.CycleFocus(false)

	case key.Matches(msg, k.SendToBack):
		_ = m.desktop.SendFocusedToBack()

	case key.Matches(msg, k.Cancel):
		m.desktop.CancelGesture()
	}
	return m, nil
}

// Run starts the demo, blocking until the user quits.
func Run() error {
	p := tea.NewProgram(
		newModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
