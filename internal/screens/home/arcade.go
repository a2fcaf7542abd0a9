package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/mascot"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/screens/welcome"
	"github.com/abhisek/mathstar/internal/ui/components"
	"github.com/abhisek/mathstar/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the banner at its natural width; the cabinet frame
// centers it. The block art is wider than the content column.
func renderTitle(frameWidth int, compact bool) string {
	if compact {
		return welcome.RenderBanner(0)
	}
	return welcome.RenderBanner(frameWidth)
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(p progress.PlayerProgress, missionsDone, missionsTotal, cw int, compact bool) string {
	starStyle := lipgloss.NewStyle().Foreground(theme.Star).Bold(true)
	coinStyle := lipgloss.NewStyle().Foreground(theme.Coin).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	missionStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	rk := p.Rank()
	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s %s",
			starStyle.Render(fmt.Sprintf("★%d", p.TotalStars)),
			coinStyle.Render(fmt.Sprintf("●%d", p.TotalCoins)),
			streakStyle.Render(fmt.Sprintf("🔥%d", p.DailyStreak)),
			missionStyle.Render(fmt.Sprintf("%s%d/%d", rk.Icon(), missionsDone, missionsTotal)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s\n%s  %s",
			starStyle.Render(fmt.Sprintf("★ %d STARS", p.TotalStars)),
			coinStyle.Render(fmt.Sprintf("● %d COINS", p.TotalCoins)),
			streakStyle.Render(fmt.Sprintf("🔥 %d DAY STREAK", p.DailyStreak)),
			missionStyle.Render(fmt.Sprintf("%s %s", rk.Icon(), strings.ToUpper(string(rk)))),
			missionStyle.Render(fmt.Sprintf("MISSIONS %d/%d", missionsDone, missionsTotal)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Coin).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.MenuButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for small
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Star).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot and its speech line centered at content width.
func renderMascotBox(v MascotVariant, cw int) string {
	speech := lipgloss.NewStyle().
		Foreground(theme.Text).
		Italic(true).
		Render(fmt.Sprintf("%s %s: %s", mascot.Avatar, mascot.Name, MascotLine(v)))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(v) + "\n" + speech)
}
