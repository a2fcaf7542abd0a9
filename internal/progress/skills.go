package progress

import "github.com/abhisek/mathstar/internal/problemgen"

// SkillLevel is a display label for how much of a player's practice went to one skill.
type SkillLevel string

const (
	LevelStarter      SkillLevel = "Starter"
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// SkillShare returns op's share of all questions seen, 0-100.
func (p PlayerProgress) SkillShare(op problemgen.Operation) float64 {
	total := p.Skills.Total()
	if total == 0 {
		return 0
	}
	return float64(p.Skills.Get(op)) / float64(total) * 100
}

// SkillLevel labels op by its share of practice.
func (p PlayerProgress) SkillLevel(op problemgen.Operation) SkillLevel {
	return levelForShare(p.SkillShare(op))
}

func levelForShare(share float64) SkillLevel {
	switch {
	case share >= 40:
		return LevelExpert
	case share >= 25:
		return LevelAdvanced
	case share >= 15:
		return LevelIntermediate
	case share >= 5:
		return LevelBeginner
	default:
		return LevelStarter
	}
}
