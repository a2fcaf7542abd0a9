// Package mascot holds the lines spoken by the game's companion character.
package mascot

import (
	"math/rand/v2"

	"github.com/abhisek/mathstar/internal/session"
)

const (
	Name   = "Math Buddy"
	Avatar = "🤖"

	// TimeUp is shown when a challenge question runs out of time.
	TimeUp = "Time's up! Don't worry, keep practicing!"
)

var encouragements = []string{
	"Great job! You're getting better!",
	"Awesome work! Keep it up!",
	"You're a math star! ⭐",
	"Fantastic! You're on fire! 🔥",
	"Amazing! You're so smart!",
	"Wonderful! Keep going!",
	"Excellent! You're doing great!",
	"Super! You're a math champion!",
}

var hints = []string{
	"Take your time and think carefully!",
	"Try counting on your fingers if it helps!",
	"Break the problem into smaller parts!",
	"Remember what you learned before!",
	"You can do this! I believe in you!",
	"Think step by step!",
	"Don't worry, practice makes perfect!",
}

// Encouragement picks a line for a correct answer.
func Encouragement(rng *rand.Rand) string {
	return pick(rng, encouragements)
}

// Hint picks a line for a wrong answer.
func Hint(rng *rand.Rand) string {
	return pick(rng, hints)
}

// Welcome returns the greeting shown when a session of mode starts.
func Welcome(mode session.Mode) string {
	switch mode {
	case session.ModeLearning:
		return "Let's learn together! Take your time and think carefully."
	case session.ModeChallenge:
		return "Challenge mode activated! You have 30 seconds per question!"
	case session.ModeAdventure:
		return "Welcome to Math Adventure! Let's explore the world of numbers!"
	default:
		return "Ready to solve some math problems?"
	}
}

func pick(rng *rand.Rand, lines []string) string {
	if rng == nil {
		return lines[rand.IntN(len(lines))]
	}
	return lines[rng.IntN(len(lines))]
}
