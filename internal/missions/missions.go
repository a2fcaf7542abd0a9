package missions

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/mathstar/internal/problemgen"
)

// DailyCount is the number of missions generated per day.
const DailyCount = 3

// Reward is what a mission pays out on completion.
type Reward struct {
	Stars int `json:"stars"`
	Coins int `json:"coins"`
}

// Mission is a daily goal with a fixed target and a one-time reward.
type Mission struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Target      int    `json:"target"`
	Progress    int    `json:"progress"`
	Reward      Reward `json:"reward"`
	Completed   bool   `json:"completed"`

	// Operation restricts which questions count. Empty means any correct answer counts.
	Operation problemgen.Operation `json:"operation,omitempty"`
}

// Generate produces today's missions. Operations may repeat.
func Generate(rng *rand.Rand, now time.Time) []Mission {
	ops := problemgen.AllOperations()
	out := make([]Mission, 0, DailyCount)

	for i := 0; i < DailyCount; i++ {
		op := ops[rng.IntN(len(ops))]
		target := rng.IntN(10) + 5
		out = append(out, Mission{
			ID:          fmt.Sprintf("mission_%d_%d", i, now.UnixMilli()),
			Title:       fmt.Sprintf("%s Master", op.DisplayName()),
			Description: fmt.Sprintf("Solve %d %s problems correctly", target, op),
			Target:      target,
			Reward:      RewardFor(target),
			Operation:   op,
		})
	}
	return out
}

// RewardFor returns the reward for a mission with the given target.
func RewardFor(target int) Reward {
	return Reward{Stars: target * 2, Coins: target * 5}
}

// Percent returns completion as 0.0-1.0.
func (m Mission) Percent() float64 {
	if m.Target <= 0 {
		return 0
	}
	return float64(m.Progress) / float64(m.Target)
}

// Clone returns a copy of ms that shares no backing array with it.
func Clone(ms []Mission) []Mission {
	if ms == nil {
		return nil
	}
	out := make([]Mission, len(ms))
	copy(out, ms)
	return out
}
