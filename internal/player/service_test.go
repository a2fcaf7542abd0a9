package player

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathstar/internal/missions"
	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/rank"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/store"
	"github.com/abhisek/mathstar/internal/store/memory"
)

var today = time.Date(2026, 10, 15, 16, 0, 0, 0, time.UTC)

// failingStore wraps a memory store and fails every Save.
type failingStore struct {
	*memory.Store
}

func (failingStore) Save(context.Context, ...store.Record) error {
	return errors.New("disk full")
}

// failingDeleteStore wraps a memory store and fails every Delete.
type failingDeleteStore struct {
	*memory.Store
}

func (failingDeleteStore) Delete(context.Context, ...string) error {
	return errors.New("read-only")
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(t *testing.T, rs store.RecordStore, opts ...Option) *Service {
	t.Helper()
	base := []Option{
		WithClock(fixedClock(today)),
		WithRand(rand.New(rand.NewPCG(7, 11))),
	}
	s := NewService(rs, append(base, opts...)...)
	s.Load(context.Background())
	return s
}

// seedMissions stores a mission set that no short session can complete.
func seedMissions(t *testing.T, rs store.RecordStore, date string, ms ...missions.Mission) {
	t.Helper()
	if len(ms) == 0 {
		ms = []missions.Mission{{
			ID:     "unreachable",
			Title:  "Addition Master",
			Target: 100,
			Reward: missions.RewardFor(100),
		}}
	}
	b, err := json.Marshal(ms)
	require.NoError(t, err)
	require.NoError(t, rs.Save(context.Background(),
		store.Record{Key: store.KeyDailyMissions, Value: b},
		store.Record{Key: store.KeyLastMissionDate, Value: []byte(date)},
	))
}

// playSession answers the first correct questions right and the rest wrong.
func playSession(t *testing.T, s *Service, mode string, correct int) session.Session {
	t.Helper()
	sess, err := s.StartSession(mode)
	require.NoError(t, err)

	for i := 0; !sess.Finished(); i++ {
		q := sess.Current()
		answer := q.Answer + 1
		if i < correct {
			answer = q.Answer
		}
		sess, err = sess.SubmitAnswer(answer)
		require.NoError(t, err)
		sess, err = sess.Advance(today)
		require.NoError(t, err)
	}
	return sess
}

func TestLoad_EmptyStore(t *testing.T) {
	rs := memory.New()
	s := newTestService(t, rs)

	assert.Equal(t, progress.Default(), s.Progress())
	assert.Len(t, s.Missions(), missions.DailyCount)

	date, err := rs.Load(context.Background(), store.KeyLastMissionDate)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", string(date))

	_, err = rs.Load(context.Background(), store.KeyDailyMissions)
	assert.NoError(t, err)
}

func TestLoad_MalformedProgressFallsBack(t *testing.T) {
	rs := memory.New()
	require.NoError(t, rs.Save(context.Background(),
		store.Record{Key: store.KeyPlayerProgress, Value: []byte("{not json")},
	))

	s := newTestService(t, rs)
	assert.Equal(t, progress.Default(), s.Progress())
}

func TestLoad_MalformedMissionsRegenerated(t *testing.T) {
	rs := memory.New()
	require.NoError(t, rs.Save(context.Background(),
		store.Record{Key: store.KeyDailyMissions, Value: []byte("[[[")},
		store.Record{Key: store.KeyLastMissionDate, Value: []byte("2026-10-15")},
	))

	s := newTestService(t, rs)
	assert.Len(t, s.Missions(), missions.DailyCount)
}

func TestLoad_KeepsTodaysMissions(t *testing.T) {
	rs := memory.New()
	seedMissions(t, rs, "2026-10-15")

	s := newTestService(t, rs)
	ms := s.Missions()
	require.Len(t, ms, 1)
	assert.Equal(t, "unreachable", ms[0].ID)
}

func TestLoad_StaleMissionsReplaced(t *testing.T) {
	rs := memory.New()
	seedMissions(t, rs, "2026-10-14")

	s := newTestService(t, rs)
	ms := s.Missions()
	require.Len(t, ms, missions.DailyCount)
	for _, m := range ms {
		assert.NotEqual(t, "unreachable", m.ID)
	}
}

func TestLoad_StoredProgress(t *testing.T) {
	rs := memory.New()
	p := progress.Default()
	p.TotalStars = 320
	p.DailyStreak = 4
	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, rs.Save(context.Background(), store.Record{Key: store.KeyPlayerProgress, Value: b}))

	s := newTestService(t, rs)
	got := s.Progress()
	assert.Equal(t, 320, got.TotalStars)
	assert.Equal(t, 4, got.DailyStreak)
	assert.Equal(t, rank.Grandmaster, got.Rank())
}

func TestFinishSession_LearningFourOfFive(t *testing.T) {
	rs := memory.New()
	seedMissions(t, rs, "2026-10-15")
	s := newTestService(t, rs)

	out, err := s.FinishSession(context.Background(), playSession(t, s, "learning", 4))
	require.NoError(t, err)

	assert.Equal(t, progress.Rewards{Stars: 8, Coins: 20}, out.Rewards)
	assert.Equal(t, 8, out.Progress.TotalStars)
	assert.Equal(t, 20, out.Progress.TotalCoins)
	assert.Equal(t, 1, out.Progress.DailyStreak)
	assert.Equal(t, rank.Elite, out.Progress.Rank())
	assert.Equal(t, out.Progress, s.Progress())

	// A fresh service over the same store sees the saved state.
	reloaded := newTestService(t, rs)
	assert.Equal(t, s.Progress(), reloaded.Progress())
	assert.Equal(t, s.Missions(), reloaded.Missions())
}

func TestFinishSession_Twice(t *testing.T) {
	s := newTestService(t, memory.New())
	sess := playSession(t, s, "learning", 5)

	_, err := s.FinishSession(context.Background(), sess)
	require.NoError(t, err)
	before := s.Progress()

	_, err = s.FinishSession(context.Background(), sess)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
	assert.Equal(t, before, s.Progress())
}

func TestFinishSession_Unfinished(t *testing.T) {
	s := newTestService(t, memory.New())
	sess, err := s.StartSession("challenge")
	require.NoError(t, err)

	_, err = s.FinishSession(context.Background(), sess)
	assert.ErrorIs(t, err, progress.ErrSessionNotFinished)
	assert.Equal(t, progress.Default(), s.Progress())
}

func TestFinishSession_CompletesMission(t *testing.T) {
	rs := memory.New()
	seedMissions(t, rs, "2026-10-15", missions.Mission{
		ID:     "any",
		Title:  "Warm Up",
		Target: 3,
		Reward: missions.RewardFor(3),
	})
	s := newTestService(t, rs)

	out, err := s.FinishSession(context.Background(), playSession(t, s, "learning", 5))
	require.NoError(t, err)

	require.Len(t, out.CompletedMissions, 1)
	// 10 stars from the session plus 6 from the mission.
	assert.Equal(t, 16, out.Progress.TotalStars)
	assert.Equal(t, 25+15, out.Progress.TotalCoins)
	assert.Equal(t, []string{"any"}, out.Progress.CompletedMissions)
	assert.True(t, s.Missions()[0].Completed)

	out, err = s.FinishSession(context.Background(), playSession(t, s, "learning", 5))
	require.NoError(t, err)
	assert.Empty(t, out.CompletedMissions)
	assert.Equal(t, 26, out.Progress.TotalStars)
}

func TestFinishSession_SaveFailureKeepsState(t *testing.T) {
	rs := failingStore{memory.New()}
	s := newTestService(t, rs)

	out, err := s.FinishSession(context.Background(), playSession(t, s, "learning", 5))
	require.NoError(t, err)
	assert.Equal(t, 10, out.Rewards.Stars)
	assert.GreaterOrEqual(t, s.Progress().TotalStars, 10)

	_, err = rs.Load(context.Background(), store.KeyPlayerProgress)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFinishSession_DayRollover(t *testing.T) {
	rs := memory.New()
	seedMissions(t, rs, "2026-10-15")

	now := today
	s := newTestService(t, rs, WithClock(func() time.Time { return now }))
	require.Equal(t, "unreachable", s.Missions()[0].ID)

	sess := playSession(t, s, "learning", 5)
	now = today.Add(24 * time.Hour)

	out, err := s.FinishSession(context.Background(), sess)
	require.NoError(t, err)
	assert.Len(t, out.Missions, missions.DailyCount)
	assert.NotEqual(t, "unreachable", out.Missions[0].ID)

	date, err := rs.Load(context.Background(), store.KeyLastMissionDate)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", string(date))
}

func TestFinishSession_AppendsHistory(t *testing.T) {
	rs := memory.New()
	s := newTestService(t, rs, WithHistory(rs))

	sess := playSession(t, s, "challenge", 7)
	_, err := s.FinishSession(context.Background(), sess)
	require.NoError(t, err)

	hist, err := s.RecentSessions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, sess.ID, hist[0].SessionID)
	assert.Equal(t, "challenge", hist[0].Mode)
	assert.Equal(t, 10, hist[0].Questions)
	assert.Equal(t, 7, hist[0].Correct)
	assert.Equal(t, 7, hist[0].Stars)
}

func TestRecentSessions_NoHistory(t *testing.T) {
	s := newTestService(t, memory.New())

	hist, err := s.RecentSessions(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, hist)
}

func TestFinishSession_Concurrent(t *testing.T) {
	rs := memory.New()
	seedMissions(t, rs, "2026-10-15")
	s := newTestService(t, rs)

	const n = 8
	sessions := make([]session.Session, n)
	for i := range sessions {
		sessions[i] = playSession(t, s, "learning", 5)
	}

	var wg sync.WaitGroup
	for _, sess := range sessions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.FinishSession(context.Background(), sess)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p := s.Progress()
	assert.Equal(t, n*10, p.TotalStars)
	assert.Equal(t, n*25, p.TotalCoins)
	assert.Equal(t, 1, p.DailyStreak)
	assert.Equal(t, n*5, p.Skills.Total())
}

func TestStartSession_Modes(t *testing.T) {
	s := newTestService(t, memory.New())

	tests := []struct {
		mode  string
		want  session.Mode
		count int
	}{
		{"learning", session.ModeLearning, 5},
		{"challenge", session.ModeChallenge, 10},
		{"adventure", session.ModeAdventure, 5},
		{"bogus", session.ModeLearning, 5},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			sess, err := s.StartSession(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sess.Mode)
			assert.Len(t, sess.Questions, tt.count)
			for _, q := range sess.Questions {
				assert.NoError(t, problemgen.Validate(q))
			}
		})
	}
}

func TestReset(t *testing.T) {
	rs := memory.New()
	s := newTestService(t, rs)
	_, err := s.FinishSession(context.Background(), playSession(t, s, "learning", 5))
	require.NoError(t, err)
	require.NotZero(t, s.Progress().TotalStars)

	require.NoError(t, s.Reset(context.Background()))
	assert.Equal(t, progress.Default(), s.Progress())
	assert.Len(t, s.Missions(), missions.DailyCount)

	_, err = rs.Load(context.Background(), store.KeyPlayerProgress)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = rs.Load(context.Background(), store.KeyDailyMissions)
	assert.NoError(t, err)
}

func TestReset_DeleteFailureKeepsState(t *testing.T) {
	rs := failingDeleteStore{memory.New()}
	s := newTestService(t, rs)
	_, err := s.FinishSession(context.Background(), playSession(t, s, "learning", 5))
	require.NoError(t, err)
	before, missionsBefore := s.Progress(), s.Missions()

	require.Error(t, s.Reset(context.Background()))
	assert.Equal(t, before, s.Progress())
	assert.Equal(t, missionsBefore, s.Missions())

	_, err = rs.Load(context.Background(), store.KeyPlayerProgress)
	assert.NoError(t, err)
}
