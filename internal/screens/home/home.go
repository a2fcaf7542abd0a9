package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathstar/internal/missions"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/router"
	"github.com/abhisek/mathstar/internal/screen"
	"github.com/abhisek/mathstar/internal/screens/game"
	"github.com/abhisek/mathstar/internal/screens/history"
	missionscreen "github.com/abhisek/mathstar/internal/screens/missions"
	"github.com/abhisek/mathstar/internal/screens/results"
	"github.com/abhisek/mathstar/internal/screens/standing"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/ui/components"
)

// Player is everything the home menu reaches into.
type Player interface {
	game.Player
	history.Source
	Progress() progress.PlayerProgress
	Missions() []missions.Mission
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	player Player
	menu   components.Menu
	now    func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(p Player) *HomeScreen {
	h := &HomeScreen{player: p, now: time.Now}

	var items []components.MenuItem
	for _, mode := range session.AllModes() {
		items = append(items, components.MenuItem{
			Label:  strings.ToUpper(mode.DisplayName()),
			Action: h.play(mode),
		})
	}
	items = append(items,
		components.MenuItem{Label: "MISSIONS", Action: func() tea.Cmd {
			return push(missionscreen.New(h.player.Missions()))
		}},
		components.MenuItem{Label: "PROGRESS", Action: func() tea.Cmd {
			return push(standing.New(h.player.Progress()))
		}},
		components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
			return push(history.New(h.player))
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) play(mode session.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		return push(h.NewGame(mode))
	}
}

// NewGame builds a game whose results screen can start another game of
// the same mode in its place.
func (h *HomeScreen) NewGame(mode session.Mode) screen.Screen {
	return game.New(h.player, mode, func(r session.Result, out progress.Outcome) screen.Screen {
		return results.New(r, out, func() screen.Screen { return h.NewGame(mode) })
	})
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 56 || width < 100

	cw := components.ContentWidth(width)
	p := h.player.Progress()
	ms := h.player.Missions()
	variant := h.mascotVariant(p, ms)

	var sections []string
	sections = append(sections, renderTitle(width-4, compact))
	if !compact {
		sections = append(sections, renderMascotBox(variant, cw))
	}
	sections = append(sections, renderStatsBar(p, completedCount(ms), len(ms), cw, compact))

	if termHeight < 44 {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}

	return components.ScreenFrame(strings.Join(sections, "\n\n"), width, height, false)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) mascotVariant(p progress.PlayerProgress, ms []missions.Mission) MascotVariant {
	if len(ms) > 0 && completedCount(ms) == len(ms) {
		return MascotCelebrating
	}
	if p.DailyStreak > 0 && p.LastPlayDate != progress.DateKey(h.now()) {
		return MascotAlert
	}
	return MascotIdle
}

func completedCount(ms []missions.Mission) int {
	n := 0
	for _, m := range ms {
		if m.Completed {
			n++
		}
	}
	return n
}
