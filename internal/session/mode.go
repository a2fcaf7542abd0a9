package session

import (
	"math/rand/v2"
	"strings"
)

// Mode selects question count, difficulty, and time pressure.
type Mode string

const (
	ModeLearning  Mode = "learning"
	ModeChallenge Mode = "challenge"
	ModeAdventure Mode = "adventure"
)

const (
	// CountdownSeconds is the per-question time limit in countdown modes.
	CountdownSeconds = 30

	// FlatBonus is the score bonus for a correct answer without a running countdown.
	FlatBonus = 10
)

// AllModes returns the playable modes in menu order.
func AllModes() []Mode {
	return []Mode{ModeLearning, ModeChallenge, ModeAdventure}
}

// ParseMode maps a mode string to a Mode. Unknown or empty strings
// fall back to ModeLearning.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeChallenge:
		return ModeChallenge
	case ModeAdventure:
		return ModeAdventure
	default:
		return ModeLearning
	}
}

// QuestionCount returns how many questions a session in this mode holds.
func (m Mode) QuestionCount() int {
	if m == ModeChallenge {
		return 10
	}
	return 5
}

// HasCountdown reports whether questions are timed.
func (m Mode) HasCountdown() bool {
	return m == ModeChallenge
}

// Difficulty picks the difficulty for one question: 2-4 in challenge, otherwise 1.
func (m Mode) Difficulty(rng *rand.Rand) int {
	if m == ModeChallenge {
		return rng.IntN(3) + 2
	}
	return 1
}

// DisplayName returns the capitalized mode name.
func (m Mode) DisplayName() string {
	switch m {
	case ModeChallenge:
		return "Challenge"
	case ModeAdventure:
		return "Adventure"
	default:
		return "Learning"
	}
}
