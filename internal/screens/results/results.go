// Package results shows what a finished session earned.
package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/router"
	"github.com/abhisek/mathstar/internal/screen"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/ui/components"
	"github.com/abhisek/mathstar/internal/ui/layout"
	"github.com/abhisek/mathstar/internal/ui/theme"
)

// ResultsScreen displays the session summary.
type ResultsScreen struct {
	result  session.Result
	outcome progress.Outcome
	menu    components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. playAgain builds a fresh game of the same
// mode; a nil playAgain hides that option.
func New(r session.Result, out progress.Outcome, playAgain func() screen.Screen) *ResultsScreen {
	var items []components.MenuItem
	if playAgain != nil {
		items = append(items, components.MenuItem{Label: "PLAY AGAIN", Action: func() tea.Cmd {
			next := playAgain()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}})
	}
	items = append(items, components.MenuItem{Label: "HOME", Action: func() tea.Cmd {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}})

	return &ResultsScreen{
		result:  r,
		outcome: out,
		menu:    components.NewMenu(items),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections,
		theme.Title.Render(fmt.Sprintf("%s complete!", r.Mode.DisplayName())),
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.Performance()),
	)

	stats := fmt.Sprintf("Correct %d/%d    %.0f%%    Score %d    Time %s",
		r.Correct, r.Total, r.Percentage(), r.Score, formatDuration(r.Duration()))
	sections = append(sections, components.StatCard(
		lipgloss.NewStyle().Foreground(theme.Text).Render(stats), cw))

	sections = append(sections, components.RewardChips(s.outcome.Rewards.Stars, s.outcome.Rewards.Coins))

	if len(s.outcome.CompletedMissions) > 0 {
		var lines []string
		for _, m := range s.outcome.CompletedMissions {
			lines = append(lines, theme.Correct.Render("Mission complete: "+m.Title)+"  "+
				components.RewardChips(m.Reward.Stars, m.Reward.Coins))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if s.outcome.Progress.Level > 0 {
		rk := s.outcome.Progress.Rank()
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(
			fmt.Sprintf("%s %s · %d stars total", rk.Icon(), rk, s.outcome.Progress.TotalStars)))
	}

	var buttons []string
	for i, label := range s.menu.Labels() {
		buttons = append(buttons, components.MenuButton(label, i == s.menu.Selected, 22))
	}
	sections = append(sections, strings.Join(buttons, "\n"))

	celebrate := r.Correct == r.Total || len(s.outcome.CompletedMissions) > 0
	return components.ScreenFrame(strings.Join(sections, "\n\n"), width, height, celebrate)
}

func formatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
