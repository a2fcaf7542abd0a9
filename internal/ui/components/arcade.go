package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/ui/theme"
)

const (
	maxContentWidth = 60
	minContentWidth = 20

	// frameChrome is the double border plus the padding inside it.
	frameChrome = 6
)

// ContentWidth returns the width every panel on a framed screen shares, so
// cards, stats bars and menus line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-frameChrome, minContentWidth), maxContentWidth)
}

// ScreenFrame draws the double-bordered frame around a full screen and
// centers content inside it. A celebrating frame is trimmed in star gold.
func ScreenFrame(content string, width, height int, celebrate bool) string {
	border := theme.Primary
	if celebrate {
		border = theme.Star
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// StatCard boxes a block of numbers at content width cw.
func StatCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// RewardChips renders earned stars and coins as "+8 ★  +20 ●".
// A zero amount is still shown so the pair keeps its shape.
func RewardChips(stars, coins int) string {
	return theme.Stars.Render(fmt.Sprintf("+%d ★", stars)) + "  " +
		theme.Coins.Render(fmt.Sprintf("+%d ●", coins))
}

// MenuButton is one bordered menu entry. The selected entry is filled
// gold and marked with a star.
func MenuButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Star).
			BorderForeground(theme.Star).
			Render("★ " + label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
