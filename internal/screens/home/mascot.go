package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/mascot"
	"github.com/abhisek/mathstar/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // all of today's missions done
	MascotAlert                     // streak will break unless played today
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +×÷ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +×÷ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ +×÷ │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Star
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// MascotLine returns what the mascot says on the home screen.
func MascotLine(v MascotVariant) string {
	switch v {
	case MascotCelebrating:
		return "All missions done today! You're a math star! ⭐"
	case MascotAlert:
		return "Play a game today to keep your streak going!"
	default:
		return mascot.Welcome("")
	}
}
