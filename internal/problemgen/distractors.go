package problemgen

// MaxDistractorAttempts caps random draws before the deterministic fallback kicks in.
const MaxDistractorAttempts = 100

// distractorSpread returns the maximum offset of a wrong answer from the correct one.
func distractorSpread(answer int) int {
	return max(5, answer/2)
}

// distractors returns count distinct positive values near answer, none equal to it.
func (g *Generator) distractors(answer, count int) []int {
	spread := distractorSpread(answer)
	seen := map[int]bool{answer: true}
	wrong := make([]int, 0, count)

	for attempt := 0; attempt < MaxDistractorAttempts && len(wrong) < count; attempt++ {
		offset := g.rng.IntN(spread) + 1
		if g.rng.IntN(2) == 0 {
			offset = -offset
		}
		v := answer + offset
		if v <= 0 || seen[v] {
			continue
		}
		seen[v] = true
		wrong = append(wrong, v)
	}

	return fillDistractors(answer, wrong, seen, count)
}

// fillDistractors tops up wrong with answer+1, answer+2, ... until it holds count values.
func fillDistractors(answer int, wrong []int, seen map[int]bool, count int) []int {
	for next := answer + 1; len(wrong) < count; next++ {
		if next <= 0 || seen[next] {
			continue
		}
		seen[next] = true
		wrong = append(wrong, next)
	}
	return wrong
}
