// Package standing shows rank progress and the per-operation practice mix.
package standing

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/rank"
	"github.com/abhisek/mathstar/internal/router"
	"github.com/abhisek/mathstar/internal/screen"
	"github.com/abhisek/mathstar/internal/ui/components"
	"github.com/abhisek/mathstar/internal/ui/layout"
	"github.com/abhisek/mathstar/internal/ui/theme"
)

// StandingScreen renders a snapshot of the player's progress.
type StandingScreen struct {
	progress progress.PlayerProgress
}

var _ screen.Screen = (*StandingScreen)(nil)
var _ screen.KeyHintProvider = (*StandingScreen)(nil)

// New creates a StandingScreen for p.
func New(p progress.PlayerProgress) *StandingScreen {
	return &StandingScreen{progress: p.Clone()}
}

func (s *StandingScreen) Init() tea.Cmd {
	return nil
}

func (s *StandingScreen) Title() string {
	return "Progress"
}

func (s *StandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StandingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.progress

	sections := []string{
		renderRank(p.TotalStars, cw),
		renderTotals(p),
		renderSkills(p, cw),
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n\n"))
}

func renderRank(stars, cw int) string {
	st := rank.StandingFor(stars)

	head := lipgloss.NewStyle().Foreground(theme.Star).Bold(true).
		Render(fmt.Sprintf("%s %s", st.Current.Icon(), st.Current))

	var caption string
	if st.HasNext {
		caption = fmt.Sprintf("%d more stars to %s %s", st.StarsNeeded, st.Next.Icon(), st.Next)
	} else {
		caption = "Top rank reached!"
	}

	bar := components.NewProgressBar("", st.Percent, true, cw).View()
	return strings.Join([]string{
		head,
		bar,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(caption),
	}, "\n")
}

func renderTotals(p progress.PlayerProgress) string {
	return strings.Join([]string{
		theme.Stars.Render(fmt.Sprintf("★ %d stars", p.TotalStars)),
		theme.Coins.Render(fmt.Sprintf("● %d coins", p.TotalCoins)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d day streak", p.DailyStreak)),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d missions done", len(p.CompletedMissions))),
	}, "   ")
}

func renderSkills(p progress.PlayerProgress, cw int) string {
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Skills")
	if p.Skills.Total() == 0 {
		return heading + "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Play a game to start building skills!")
	}

	lines := []string{heading}
	for _, op := range problemgen.AllOperations() {
		label := fmt.Sprintf("%s %-14s %-12s", op.Symbol(), op.DisplayName(), p.SkillLevel(op))
		lines = append(lines, components.NewProgressBar(label, p.SkillShare(op)/100, true, cw).View())
	}
	return strings.Join(lines, "\n")
}
