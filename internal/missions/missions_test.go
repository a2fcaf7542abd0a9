package missions

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	for trial := 0; trial < 200; trial++ {
		ms := Generate(rng, now)
		require.Len(t, ms, DailyCount)

		ids := map[string]bool{}
		for _, m := range ms {
			assert.GreaterOrEqual(t, m.Target, 5)
			assert.LessOrEqual(t, m.Target, 14)
			assert.Equal(t, Reward{Stars: m.Target * 2, Coins: m.Target * 5}, m.Reward)
			assert.Zero(t, m.Progress)
			assert.False(t, m.Completed)
			assert.True(t, m.Operation.Valid(), "operation %q", m.Operation)
			assert.Equal(t, m.Operation.DisplayName()+" Master", m.Title)
			assert.Contains(t, m.Description, string(m.Operation))
			assert.False(t, ids[m.ID], "duplicate mission id %s", m.ID)
			ids[m.ID] = true
		}
	}
}

func TestGenerate_TargetsCoverRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		for _, m := range Generate(rng, time.Now()) {
			seen[m.Target] = true
		}
	}
	for target := 5; target <= 14; target++ {
		assert.True(t, seen[target], "target %d never generated", target)
	}
	assert.False(t, seen[15], "target 15 is out of range")
}

func finishedResult(correct int, ops ...problemgen.Operation) session.Result {
	return session.Result{
		SessionID:  "s-1",
		Correct:    correct,
		Total:      len(ops),
		Operations: ops,
		Finished:   true,
	}
}

func TestApply_OperationMissionCompletes(t *testing.T) {
	m := Mission{ID: "m", Target: 10, Progress: 7, Reward: RewardFor(10), Operation: problemgen.OpAddition}
	r := finishedResult(0,
		problemgen.OpAddition, problemgen.OpAddition, problemgen.OpAddition, problemgen.OpAddition,
		problemgen.OpDivision,
	)

	got, granted := Apply(m, r)
	assert.True(t, granted)
	assert.True(t, got.Completed)
	assert.Equal(t, 10, got.Progress)

	again, granted := Apply(got, r)
	assert.False(t, granted, "completed mission must not grant twice")
	assert.Equal(t, got, again)
}

func TestApply_PartialProgress(t *testing.T) {
	m := Mission{ID: "m", Target: 12, Operation: problemgen.OpSubtraction}
	r := finishedResult(5, problemgen.OpSubtraction, problemgen.OpAddition, problemgen.OpSubtraction)

	got, granted := Apply(m, r)
	assert.False(t, granted)
	assert.False(t, got.Completed)
	assert.Equal(t, 2, got.Progress)
}

func TestApply_GeneralMissionCountsCorrect(t *testing.T) {
	m := Mission{ID: "m", Target: 5, Progress: 2}
	r := finishedResult(4, problemgen.OpAddition, problemgen.OpAddition, problemgen.OpMultiplication,
		problemgen.OpDivision, problemgen.OpDivision)

	got, granted := Apply(m, r)
	assert.True(t, granted)
	assert.Equal(t, 5, got.Progress)
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 0.5, Mission{Target: 10, Progress: 5}.Percent(), 1e-9)
	assert.Zero(t, Mission{}.Percent())
}

func TestClone(t *testing.T) {
	orig := []Mission{{ID: "a", Progress: 1}}
	c := Clone(orig)
	c[0].Progress = 9
	assert.Equal(t, 1, orig[0].Progress)
	assert.Nil(t, Clone(nil))
}
