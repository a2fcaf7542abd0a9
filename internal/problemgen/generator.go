package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// OptionCount is the number of answer options shown per question.
const OptionCount = 4

var (
	ErrInvalidDifficulty = errors.New("difficulty must be at least 1")
	ErrUnknownOperation  = errors.New("unknown operation")
)

// Generator produces arithmetic questions with shuffled distractors.
// A Generator is not safe for concurrent use; the underlying *rand.Rand is not.
type Generator struct {
	rng        *rand.Rand
	validators []Validator
}

// New creates a Generator drawing from rng. A nil rng uses a randomly seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		rng:        rng,
		validators: DefaultValidators(),
	}
}

// Rand returns the generator's random source so callers can share it.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Generate builds a question for op at the given difficulty.
func (g *Generator) Generate(op Operation, difficulty int) (*Question, error) {
	if difficulty < 1 {
		return nil, fmt.Errorf("generate %s: %w", op, ErrInvalidDifficulty)
	}

	var left, right, answer int
	switch op {
	case OpAddition:
		left = g.between(1, 10*difficulty)
		right = g.between(1, 10*difficulty)
		answer = left + right
	case OpSubtraction:
		left = g.rng.IntN(10*difficulty) + 5*difficulty
		// Minuend is at least 5, so the answer stays positive.
		right = g.between(1, left-1)
		answer = left - right
	case OpMultiplication:
		left = g.between(1, difficulty)
		right = g.between(1, difficulty)
		answer = left * right
	case OpDivision:
		answer = g.between(1, difficulty)
		right = g.between(1, difficulty)
		left = answer * right
	default:
		return nil, fmt.Errorf("generate %q: %w", op, ErrUnknownOperation)
	}

	options := append([]int{answer}, g.distractors(answer, OptionCount-1)...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q := &Question{
		ID:         uuid.NewString(),
		Text:       fmt.Sprintf("%d %s %d = ?", left, op.Symbol(), right),
		Answer:     answer,
		Options:    options,
		Operation:  op,
		Difficulty: difficulty,
	}

	for _, v := range g.validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// RandomOperation picks one of the four operations uniformly.
func (g *Generator) RandomOperation() Operation {
	ops := AllOperations()
	return ops[g.rng.IntN(len(ops))]
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}
