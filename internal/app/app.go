package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/mascot"
	"github.com/abhisek/mathstar/internal/router"
	"github.com/abhisek/mathstar/internal/screen"
	"github.com/abhisek/mathstar/internal/screens/home"
	"github.com/abhisek/mathstar/internal/screens/welcome"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Player home.Player
	Logger *slog.Logger

	// Greeting is shown on the splash screen. Empty uses the mascot's default.
	Greeting string

	// SkipWelcome starts directly on the home screen.
	SkipWelcome bool

	// StartMode, when set, opens a game of that mode on top of the home
	// screen. It implies SkipWelcome.
	StartMode session.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	player home.Player
	log    *slog.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash screen.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	homeFactory := func() screen.Screen { return home.New(opts.Player) }

	var r *router.Router
	switch {
	case opts.StartMode != "":
		h := home.New(opts.Player)
		r = router.New(h)
		// Init of the active screen runs from AppModel.Init.
		_ = r.Push(h.NewGame(opts.StartMode))
	case opts.SkipWelcome:
		r = router.New(homeFactory())
	default:
		greeting := opts.Greeting
		if greeting == "" {
			greeting = fmt.Sprintf("Hi! I'm %s. %s", mascot.Name, mascot.Welcome(""))
		}
		r = router.New(welcome.New(homeFactory, greeting))
	}

	return AppModel{
		router: r,
		player: opts.Player,
		log:    log,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.log.Debug("quit requested")
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.log.Debug("push screen", "title", msg.Screen.Title(), "depth", m.router.Depth()+1)
	case router.ReplaceScreenMsg:
		m.log.Debug("replace screen", "title", msg.Screen.Title())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) headerStats() layout.HeaderStats {
	if m.player == nil {
		return layout.HeaderStats{}
	}
	p := m.player.Progress()
	return layout.HeaderStats{
		Stars:  p.TotalStars,
		Coins:  p.TotalCoins,
		Streak: p.DailyStreak,
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
