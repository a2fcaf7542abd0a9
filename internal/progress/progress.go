package progress

import (
	"encoding/json"
	"slices"

	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/abhisek/mathstar/internal/rank"
)

// Skills counts questions seen per operation.
type Skills struct {
	Addition       int `json:"addition"`
	Subtraction    int `json:"subtraction"`
	Multiplication int `json:"multiplication"`
	Division       int `json:"division"`
}

// Get returns the counter for op.
func (s Skills) Get(op problemgen.Operation) int {
	switch op {
	case problemgen.OpAddition:
		return s.Addition
	case problemgen.OpSubtraction:
		return s.Subtraction
	case problemgen.OpMultiplication:
		return s.Multiplication
	case problemgen.OpDivision:
		return s.Division
	}
	return 0
}

// Inc returns s with the counter for op incremented. Unknown ops are ignored.
func (s Skills) Inc(op problemgen.Operation) Skills {
	switch op {
	case problemgen.OpAddition:
		s.Addition++
	case problemgen.OpSubtraction:
		s.Subtraction++
	case problemgen.OpMultiplication:
		s.Multiplication++
	case problemgen.OpDivision:
		s.Division++
	}
	return s
}

// Total returns the sum of all counters.
func (s Skills) Total() int {
	return s.Addition + s.Subtraction + s.Multiplication + s.Division
}

// PlayerProgress is the persistent per-device player record.
type PlayerProgress struct {
	Level        int    `json:"level"`
	TotalStars   int    `json:"totalStars"`
	TotalCoins   int    `json:"totalCoins"`
	DailyStreak  int    `json:"dailyStreak"`
	LastPlayDate string `json:"lastPlayDate"`

	// CompletedMissions is a history of completed mission IDs. Nothing gates on it.
	CompletedMissions []string `json:"completedMissions"`

	Skills Skills `json:"skillsProgress"`
}

// Default returns the progress of a brand-new player.
func Default() PlayerProgress {
	return PlayerProgress{
		Level:             1,
		CompletedMissions: []string{},
	}
}

// Rank is derived from TotalStars on every call.
func (p PlayerProgress) Rank() rank.Rank {
	return rank.FromStars(p.TotalStars)
}

// Clone returns a deep copy of p.
func (p PlayerProgress) Clone() PlayerProgress {
	p.CompletedMissions = slices.Clone(p.CompletedMissions)
	if p.CompletedMissions == nil {
		p.CompletedMissions = []string{}
	}
	return p
}

// normalize repairs values a hand-edited or older record might carry.
func (p PlayerProgress) normalize() PlayerProgress {
	if p.Level < 1 {
		p.Level = 1
	}
	p.TotalStars = max(p.TotalStars, 0)
	p.TotalCoins = max(p.TotalCoins, 0)
	p.DailyStreak = max(p.DailyStreak, 0)
	if p.CompletedMissions == nil {
		p.CompletedMissions = []string{}
	}
	return p
}

type progressJSON PlayerProgress

// MarshalJSON writes the derived rank alongside the stored fields.
func (p PlayerProgress) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		progressJSON
		Rank rank.Rank `json:"rank"`
	}{progressJSON(p), p.Rank()})
}

// UnmarshalJSON reads a stored record. Any stored rank is ignored and
// recomputed from stars.
func (p *PlayerProgress) UnmarshalJSON(data []byte) error {
	var raw progressJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = PlayerProgress(raw).normalize()
	return nil
}
