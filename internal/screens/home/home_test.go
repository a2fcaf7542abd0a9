package home

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathstar/internal/missions"
	"github.com/abhisek/mathstar/internal/player"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/router"
	"github.com/abhisek/mathstar/internal/screens/game"
	"github.com/abhisek/mathstar/internal/screens/history"
	missionscreen "github.com/abhisek/mathstar/internal/screens/missions"
	"github.com/abhisek/mathstar/internal/screens/standing"
	"github.com/abhisek/mathstar/internal/store/memory"
)

var today = time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)

func newPlayer(t *testing.T) *player.Service {
	t.Helper()
	svc := player.NewService(memory.New(),
		player.WithHistory(memory.New()),
		player.WithClock(func() time.Time { return today }),
		player.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	svc.Load(context.Background())
	return svc
}

func pressDown(h *HomeScreen, n int) {
	for i := 0; i < n; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
}

func selectItem(t *testing.T, h *HomeScreen, index int) tea.Msg {
	t.Helper()
	pressDown(h, index)
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("item %d returned no command", index)
	}
	return cmd()
}

func TestHomeScreen_MenuLabels(t *testing.T) {
	h := New(newPlayer(t))
	want := []string{"LEARNING", "CHALLENGE", "ADVENTURE", "MISSIONS", "PROGRESS", "HISTORY", "EXIT"}
	got := h.menu.Labels()
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHomeScreen_PlayPushesGame(t *testing.T) {
	h := New(newPlayer(t))
	msg := selectItem(t, h, 1)

	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*game.GameScreen); !ok {
		t.Fatalf("expected a game screen, got %T", push.Screen)
	}
	if push.Screen.Title() != "Challenge Mode" {
		t.Errorf("game title = %q, want Challenge Mode", push.Screen.Title())
	}
}

func TestHomeScreen_Navigation(t *testing.T) {
	tests := []struct {
		index int
		check func(any) bool
	}{
		{3, func(s any) bool { _, ok := s.(*missionscreen.MissionsScreen); return ok }},
		{4, func(s any) bool { _, ok := s.(*standing.StandingScreen); return ok }},
		{5, func(s any) bool { _, ok := s.(*history.HistoryScreen); return ok }},
	}
	for _, tt := range tests {
		h := New(newPlayer(t))
		msg := selectItem(t, h, tt.index)
		push, ok := msg.(router.PushScreenMsg)
		if !ok {
			t.Fatalf("item %d: expected PushScreenMsg, got %T", tt.index, msg)
		}
		if !tt.check(push.Screen) {
			t.Errorf("item %d pushed %T", tt.index, push.Screen)
		}
	}
}

func TestHomeScreen_Exit(t *testing.T) {
	h := New(newPlayer(t))
	msg := selectItem(t, h, 6)
	if _, ok := msg.(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", msg)
	}
}

func TestHomeScreen_ViewShowsStats(t *testing.T) {
	h := New(newPlayer(t))

	full := h.View(120, 60)
	for _, want := range []string{"0 STARS", "0 COINS", "0 DAY STREAK", "ELITE", "MISSIONS 0/3", "Math Buddy"} {
		if !strings.Contains(full, want) {
			t.Errorf("full view missing %q", want)
		}
	}

	small := h.View(80, 24)
	if !strings.Contains(small, "M A T H S T A R") {
		t.Error("compact view should use the compact banner")
	}
	if !strings.Contains(small, "LEARNING") {
		t.Error("compact view should list menu items")
	}
}

func TestHomeScreen_MascotVariant(t *testing.T) {
	h := New(newPlayer(t))
	h.now = func() time.Time { return today }

	done := []missions.Mission{{Completed: true}, {Completed: true}}
	open := []missions.Mission{{Completed: true}, {}}

	streak := progress.Default()
	streak.DailyStreak = 2
	streak.LastPlayDate = "2026-10-14"

	playedToday := streak
	playedToday.LastPlayDate = "2026-10-15"

	tests := []struct {
		name string
		p    progress.PlayerProgress
		ms   []missions.Mission
		want MascotVariant
	}{
		{"new player", progress.Default(), open, MascotIdle},
		{"no missions", progress.Default(), nil, MascotIdle},
		{"all missions done", streak, done, MascotCelebrating},
		{"streak at risk", streak, open, MascotAlert},
		{"played today", playedToday, open, MascotIdle},
	}
	for _, tt := range tests {
		if got := h.mascotVariant(tt.p, tt.ms); got != tt.want {
			t.Errorf("%s: variant = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestHomeScreen_PlayAgainChain(t *testing.T) {
	h := New(newPlayer(t))
	g := h.NewGame("learning")
	if g.Title() != "Learning Mode" {
		t.Errorf("Title = %q", g.Title())
	}
}
