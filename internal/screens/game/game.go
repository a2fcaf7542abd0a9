// Package game is the screen where questions are answered.
package game

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathstar/internal/mascot"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/router"
	"github.com/abhisek/mathstar/internal/screen"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/ui/components"
	"github.com/abhisek/mathstar/internal/ui/layout"
)

// Player starts sessions and records finished ones.
type Player interface {
	StartSession(mode string) (session.Session, error)
	FinishSession(ctx context.Context, s session.Session) (progress.Outcome, error)
}

// ResultsFactory builds the screen shown after a session is recorded.
type ResultsFactory func(r session.Result, out progress.Outcome) screen.Screen

// tickMsg is one countdown second for the question at index of the
// session with sessionID.
type tickMsg struct {
	sessionID string
	index     int
}

// finishedMsg reports that the session has been recorded.
type finishedMsg struct {
	outcome progress.Outcome
	err     error
}

// GameScreen runs one session.
type GameScreen struct {
	player    Player
	onFinish  ResultsFactory
	now       func() time.Time
	rng       *rand.Rand
	sess      session.Session
	choice    components.MultiChoice
	message   string
	confirm   bool
	finishing bool
	errMsg    string
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.EscapeHandler = (*GameScreen)(nil)

// New starts a session of mode and returns its screen.
func New(p Player, mode session.Mode, onFinish ResultsFactory) *GameScreen {
	g := &GameScreen{
		player:   p,
		onFinish: onFinish,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}

	sess, err := p.StartSession(string(mode))
	if err != nil {
		g.errMsg = err.Error()
		return g
	}
	g.sess = sess
	g.message = mascot.Welcome(sess.Mode)
	g.resetChoice()
	return g
}

func (g *GameScreen) Init() tea.Cmd {
	return g.startCountdown()
}

func (g *GameScreen) Title() string {
	if g.errMsg != "" {
		return "Game"
	}
	return g.sess.Mode.DisplayName() + " Mode"
}

func (g *GameScreen) HandlesEscape() bool {
	return true
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case g.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case g.confirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave game"},
			{Key: "N", Description: "Keep playing"},
		}
	case g.finishing:
		return nil
	case g.sess.Phase() == session.PhaseShowingResult:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return g, g.handleTick(msg)

	case finishedMsg:
		if msg.err != nil {
			g.finishing = false
			g.errMsg = msg.err.Error()
			return g, nil
		}
		next := g.onFinish(g.sess.Result(), msg.outcome)
		return g, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		return g, g.handleKey(msg)
	}
	return g, nil
}

// handleTick counts down the current question. Ticks for another session,
// another question or one already answered are dropped so no stale timer
// survives.
func (g *GameScreen) handleTick(msg tickMsg) tea.Cmd {
	if g.errMsg != "" || msg.sessionID != g.sess.ID || msg.index != g.sess.CurrentIndex || g.sess.Phase() != session.PhaseAwaitingAnswer {
		return nil
	}
	if g.confirm {
		// Paused while the quit dialog is open.
		return g.tick()
	}

	g.sess = g.sess.Tick()
	if g.sess.Phase() == session.PhaseShowingResult {
		g.choice = g.choice.Reveal()
		g.message = mascot.TimeUp
		return nil
	}
	return g.tick()
}

func (g *GameScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	if g.errMsg != "" {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	if g.confirm {
		switch key {
		case "y", "Y":
			g.confirm = false
			return func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			g.confirm = false
		}
		return nil
	}

	if g.finishing {
		return nil
	}

	if key == "esc" {
		g.confirm = true
		return nil
	}

	switch g.sess.Phase() {
	case session.PhaseAwaitingAnswer:
		return g.answer(msg)
	case session.PhaseShowingResult:
		if key == "enter" || key == "space" {
			return g.advance()
		}
	}
	return nil
}

func (g *GameScreen) answer(msg tea.KeyMsg) tea.Cmd {
	g.choice, _ = g.choice.Update(msg)
	v, ok := g.choice.Chosen()
	if !ok {
		return nil
	}

	sess, err := g.sess.SubmitAnswer(v)
	if err != nil {
		return nil
	}
	g.sess = sess
	if sess.LastCorrect {
		g.message = mascot.Encouragement(g.rng)
	} else {
		g.message = mascot.Hint(g.rng)
	}
	return nil
}

func (g *GameScreen) advance() tea.Cmd {
	sess, err := g.sess.Advance(g.now())
	if err != nil {
		return nil
	}
	g.sess = sess

	if sess.Finished() {
		g.finishing = true
		return g.finish()
	}

	g.message = ""
	g.resetChoice()
	return g.startCountdown()
}

func (g *GameScreen) finish() tea.Cmd {
	p, sess := g.player, g.sess
	return func() tea.Msg {
		out, err := p.FinishSession(context.Background(), sess)
		return finishedMsg{outcome: out, err: err}
	}
}

func (g *GameScreen) resetChoice() {
	q := g.sess.Current()
	if q == nil {
		return
	}
	g.choice = components.NewMultiChoice(q.Options, q.CorrectIndex())
}

func (g *GameScreen) startCountdown() tea.Cmd {
	if g.errMsg != "" || !g.sess.Mode.HasCountdown() || g.sess.Finished() {
		return nil
	}
	return g.tick()
}

func (g *GameScreen) tick() tea.Cmd {
	id, index := g.sess.ID, g.sess.CurrentIndex
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{sessionID: id, index: index}
	})
}
