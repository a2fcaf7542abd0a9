package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/mascot"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	switch {
	case g.errMsg != "":
		return theme.Centered(lipgloss.NewStyle().Foreground(theme.Error), width,
			fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", g.errMsg))
	case g.confirm:
		return renderQuitConfirm(width)
	case g.finishing:
		return theme.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
			"\n\n\n  Adding up your stars...")
	}

	q := g.sess.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(g.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, g.choice.View()))
	b.WriteString("\n")

	if g.sess.Phase() == session.PhaseShowingResult {
		b.WriteString(g.renderFeedback(width))
		b.WriteString("\n")
	}

	if g.message != "" {
		b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Secondary), width,
			mascot.Avatar+" "+g.message))
	}

	return b.String()
}

// renderInfoLine shows question count and score on the left, timer on the right.
func (g *GameScreen) renderInfoLine(width int) string {
	n, total := g.sess.Progress()
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", n, total))

	right := theme.Stars.Render(fmt.Sprintf("Score %d", g.sess.Score))
	if g.sess.Mode.HasCountdown() {
		timer := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		if g.sess.TimeLeft <= 5 {
			timer = timer.Foreground(theme.Error)
		}
		right += "   " + timer.Render(fmt.Sprintf("⏰ %ds", g.sess.TimeLeft))
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (g *GameScreen) renderFeedback(width int) string {
	q := g.sess.Current()
	var line string
	switch {
	case g.sess.LastCorrect:
		line = theme.Correct.Render("Correct!")
	case g.sess.Selected == nil:
		line = theme.Incorrect.Render(fmt.Sprintf("Out of time! The answer was %d", q.Answer))
	default:
		line = theme.Incorrect.Render(fmt.Sprintf("Not quite! The answer was %d", q.Answer))
	}

	hint := theme.Hint.Render("Press Enter to continue")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width,
		"Leave this game?"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
		"Stars from an unfinished game are not saved."))
	b.WriteString("\n\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Error), width,
		"[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(lipgloss.NewStyle().Foreground(theme.Primary), width,
		"[N] No, keep playing"))
	return b.String()
}
