package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/mathstar/internal/missions"
	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/abhisek/mathstar/internal/rank"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC)

func result(correct int, ops ...problemgen.Operation) session.Result {
	return session.Result{
		SessionID:  "session-1",
		Mode:       session.ModeLearning,
		Correct:    correct,
		Total:      len(ops),
		Operations: ops,
		Finished:   true,
	}
}

func learningResult(correct int) session.Result {
	return result(correct,
		problemgen.OpAddition, problemgen.OpSubtraction, problemgen.OpMultiplication,
		problemgen.OpDivision, problemgen.OpAddition,
	)
}

func TestApply_LearningFourOfFive(t *testing.T) {
	out, err := ApplySessionResult(Default(), nil, learningResult(4), today)
	require.NoError(t, err)

	assert.Equal(t, Rewards{Stars: 8, Coins: 20}, out.Rewards)
	assert.Equal(t, 8, out.Progress.TotalStars)
	assert.Equal(t, 20, out.Progress.TotalCoins)
	assert.Equal(t, rank.Elite, out.Progress.Rank())
	assert.Equal(t, 1, out.Progress.DailyStreak)
	assert.Equal(t, "2026-10-15", out.Progress.LastPlayDate)
}

func TestApply_SkillsCountExposure(t *testing.T) {
	out, err := ApplySessionResult(Default(), nil, learningResult(0), today)
	require.NoError(t, err)

	assert.Equal(t, Skills{Addition: 2, Subtraction: 1, Multiplication: 1, Division: 1}, out.Progress.Skills)
}

func TestApply_RankRecomputed(t *testing.T) {
	p := Default()
	p.TotalStars = 95

	out, err := ApplySessionResult(p, nil, learningResult(5), today)
	require.NoError(t, err)
	assert.Equal(t, 105, out.Progress.TotalStars)
	assert.Equal(t, rank.Master, out.Progress.Rank())
}

func TestApply_RejectsUnfinished(t *testing.T) {
	r := learningResult(3)
	r.Finished = false

	_, err := ApplySessionResult(Default(), nil, r, today)
	assert.True(t, errors.Is(err, ErrSessionNotFinished))
}

func TestApply_DoesNotMutateInputs(t *testing.T) {
	p := Default()
	p.CompletedMissions = []string{"old"}
	ms := []missions.Mission{{ID: "m1", Target: 5, Progress: 4, Reward: missions.RewardFor(5), Operation: problemgen.OpAddition}}

	_, err := ApplySessionResult(p, ms, learningResult(4), today)
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalStars)
	assert.Equal(t, []string{"old"}, p.CompletedMissions)
	assert.Equal(t, 4, ms[0].Progress)
	assert.False(t, ms[0].Completed)
}

func TestApply_MissionGrantedExactlyOnce(t *testing.T) {
	ms := []missions.Mission{{
		ID:        "mission_0",
		Target:    10,
		Progress:  7,
		Reward:    missions.RewardFor(10),
		Operation: problemgen.OpAddition,
	}}
	r := result(2,
		problemgen.OpAddition, problemgen.OpAddition, problemgen.OpAddition, problemgen.OpAddition,
		problemgen.OpDivision,
	)

	first, err := ApplySessionResult(Default(), ms, r, today)
	require.NoError(t, err)

	m := first.Missions[0]
	assert.Equal(t, 10, m.Progress)
	assert.True(t, m.Completed)
	require.Len(t, first.CompletedMissions, 1)

	sessionStars := SessionRewards(r).Stars
	sessionCoins := SessionRewards(r).Coins
	assert.Equal(t, sessionStars+20, first.Progress.TotalStars)
	assert.Equal(t, sessionCoins+50, first.Progress.TotalCoins)
	assert.Equal(t, []string{"mission_0"}, first.Progress.CompletedMissions)

	// Same result applied again: session rewards accrue, mission reward does not.
	second, err := ApplySessionResult(first.Progress, first.Missions, r, today)
	require.NoError(t, err)
	assert.Empty(t, second.CompletedMissions)
	assert.Equal(t, first.Progress.TotalStars+sessionStars, second.Progress.TotalStars)
	assert.Equal(t, first.Progress.TotalCoins+sessionCoins, second.Progress.TotalCoins)
	assert.Equal(t, first.Missions, second.Missions)
	assert.Equal(t, []string{"mission_0"}, second.Progress.CompletedMissions)
}

func TestApply_MultipleMissionsIndependent(t *testing.T) {
	ms := []missions.Mission{
		{ID: "a", Target: 5, Progress: 4, Reward: missions.RewardFor(5), Operation: problemgen.OpAddition},
		{ID: "b", Target: 5, Progress: 0, Reward: missions.RewardFor(5), Operation: problemgen.OpDivision},
		{ID: "c", Target: 5, Progress: 5, Reward: missions.RewardFor(5), Completed: true, Operation: problemgen.OpAddition},
	}

	out, err := ApplySessionResult(Default(), ms, learningResult(5), today)
	require.NoError(t, err)

	assert.True(t, out.Missions[0].Completed)
	assert.Equal(t, 1, out.Missions[1].Progress)
	assert.Equal(t, ms[2], out.Missions[2])
	require.Len(t, out.CompletedMissions, 1)
	assert.Equal(t, "a", out.CompletedMissions[0].ID)
	assert.Equal(t, 10+10, out.Progress.TotalStars)
}

func TestSessionRewards(t *testing.T) {
	tests := []struct {
		correct, total int
		want           Rewards
	}{
		{4, 5, Rewards{8, 20}},
		{5, 5, Rewards{10, 25}},
		{0, 5, Rewards{0, 0}},
		{7, 10, Rewards{7, 35}},
		{1, 3, Rewards{3, 5}},
		{0, 0, Rewards{}},
	}
	for _, tt := range tests {
		got := SessionRewards(session.Result{Correct: tt.correct, Total: tt.total})
		assert.Equal(t, tt.want, got, "%d/%d", tt.correct, tt.total)
	}
}
