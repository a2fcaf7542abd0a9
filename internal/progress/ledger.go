package progress

import (
	"errors"
	"time"

	"github.com/abhisek/mathstar/internal/missions"
	"github.com/abhisek/mathstar/internal/session"
)

// ErrSessionNotFinished is returned when a result is applied before the session ended.
var ErrSessionNotFinished = errors.New("session is not finished")

// Rewards are the stars and coins earned directly from a session.
type Rewards struct {
	Stars int `json:"starsEarned"`
	Coins int `json:"coinsEarned"`
}

// Outcome is the result of applying one finished session.
type Outcome struct {
	Progress PlayerProgress
	Missions []missions.Mission
	Rewards  Rewards

	// CompletedMissions are the missions completed by this session, whose
	// rewards were added to Progress on top of Rewards.
	CompletedMissions []missions.Mission
}

// SessionRewards computes the stars and coins a result earns.
func SessionRewards(r session.Result) Rewards {
	if r.Total == 0 {
		return Rewards{}
	}
	return Rewards{
		Stars: r.Correct * 10 / r.Total,
		Coins: r.Correct * 5,
	}
}

// ApplySessionResult folds a finished session into progress and missions.
// Inputs are not modified. Missions already completed are left alone, so
// applying the same result twice never grants a mission reward twice.
func ApplySessionResult(p PlayerProgress, ms []missions.Mission, r session.Result, today time.Time) (Outcome, error) {
	if !r.Finished {
		return Outcome{}, ErrSessionNotFinished
	}

	next := p.Clone().normalize()
	rewards := SessionRewards(r)
	next.TotalStars += rewards.Stars
	next.TotalCoins += rewards.Coins

	for _, op := range r.Operations {
		next.Skills = next.Skills.Inc(op)
	}

	next.DailyStreak = NextStreak(next.DailyStreak, next.LastPlayDate, today)
	next.LastPlayDate = DateKey(today)

	updated := missions.Clone(ms)
	var completed []missions.Mission
	for i, m := range updated {
		nm, granted := missions.Apply(m, r)
		updated[i] = nm
		if !granted {
			continue
		}
		next.TotalStars += nm.Reward.Stars
		next.TotalCoins += nm.Reward.Coins
		next.CompletedMissions = append(next.CompletedMissions, nm.ID)
		completed = append(completed, nm)
	}

	return Outcome{
		Progress:          next,
		Missions:          updated,
		Rewards:           rewards,
		CompletedMissions: completed,
	}, nil
}
