package problemgen

import "strings"

// Operation is the arithmetic operation a question exercises.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// AllOperations returns the four operations in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// Valid reports whether op is one of the four known operations.
func (op Operation) Valid() bool {
	switch op {
	case OpAddition, OpSubtraction, OpMultiplication, OpDivision:
		return true
	}
	return false
}

// Symbol returns the operator glyph used in question text.
func (op Operation) Symbol() string {
	switch op {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "+"
	}
}

// DisplayName returns the capitalized operation name, e.g. "Addition".
func (op Operation) DisplayName() string {
	s := string(op)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Question is a generated arithmetic question ready for display.
type Question struct {
	// ID is an opaque token unique to this question.
	ID string `json:"id"`

	// Text is the prompt, e.g. "12 ÷ 3 = ?".
	Text string `json:"question"`

	// Answer is the correct result.
	Answer int `json:"answer"`

	// Options holds exactly 4 distinct positive choices, one equal to Answer.
	Options []int `json:"options"`

	Operation  Operation `json:"operation"`
	Difficulty int       `json:"difficulty"`
}

// CorrectIndex returns the index of Answer within Options, or -1.
func (q *Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.Answer {
			return i
		}
	}
	return -1
}
