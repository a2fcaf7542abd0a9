// Package missions lists today's daily missions.
package missions

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/missions"
	"github.com/abhisek/mathstar/internal/router"
	"github.com/abhisek/mathstar/internal/screen"
	"github.com/abhisek/mathstar/internal/ui/components"
	"github.com/abhisek/mathstar/internal/ui/layout"
	"github.com/abhisek/mathstar/internal/ui/theme"
)

// MissionsScreen shows today's missions and how far along each is.
type MissionsScreen struct {
	missions []missions.Mission
}

var _ screen.Screen = (*MissionsScreen)(nil)
var _ screen.KeyHintProvider = (*MissionsScreen)(nil)

// New creates a MissionsScreen for ms.
func New(ms []missions.Mission) *MissionsScreen {
	return &MissionsScreen{missions: missions.Clone(ms)}
}

func (s *MissionsScreen) Init() tea.Cmd {
	return nil
}

func (s *MissionsScreen) Title() string {
	return "Daily Missions"
}

func (s *MissionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *MissionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *MissionsScreen) View(width, height int) string {
	if len(s.missions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No missions today. Check back tomorrow!")
	}

	cw := components.ContentWidth(width)
	done := 0
	var cards []string
	for _, m := range s.missions {
		if m.Completed {
			done++
		}
		cards = append(cards, renderMission(m, cw))
	}

	summary := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("%d of %d complete", done, len(s.missions)))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		summary+"\n\n"+strings.Join(cards, "\n"))
}

func renderMission(m missions.Mission, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Title)
	if m.Completed {
		title = theme.Correct.Render("✓ ") + title
	}

	reward := theme.Stars.Render(fmt.Sprintf("%d ★", m.Reward.Stars)) + "  " +
		theme.Coins.Render(fmt.Sprintf("%d ●", m.Reward.Coins))

	bar := components.NewProgressBar(
		fmt.Sprintf("%d/%d", m.Progress, m.Target), m.Percent(), false, cw-6).View()

	body := strings.Join([]string{
		title,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.Description),
		bar,
		reward,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(body)
}
