package problemgen

import (
	"fmt"
	"regexp"
	"strconv"
)

// MathCheckValidator recomputes the answer from the question text.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := ComputeAnswer(q.Text)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", computed, q.Answer),
		}
	}
	return nil
}

var exprRe = regexp.MustCompile(`^(\d+)\s*([+\-×÷])\s*(\d+)\s*=\s*\?$`)

// Operands extracts the two operands and operation from question text
// of the form "a <op> b = ?".
func Operands(text string) (left, right int, op Operation, err error) {
	m := exprRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, "", fmt.Errorf("no arithmetic expression in %q", text)
	}
	left, _ = strconv.Atoi(m[1])
	right, _ = strconv.Atoi(m[3])

	switch m[2] {
	case "+":
		op = OpAddition
	case "-":
		op = OpSubtraction
	case "×":
		op = OpMultiplication
	case "÷":
		op = OpDivision
	}
	return left, right, op, nil
}

// ComputeAnswer evaluates question text. Division must be exact.
func ComputeAnswer(text string) (int, error) {
	left, right, op, err := Operands(text)
	if err != nil {
		return 0, err
	}

	switch op {
	case OpAddition:
		return left + right, nil
	case OpSubtraction:
		return left - right, nil
	case OpMultiplication:
		return left * right, nil
	case OpDivision:
		if right == 0 {
			return 0, fmt.Errorf("division by zero in %q", text)
		}
		if left%right != 0 {
			return 0, fmt.Errorf("inexact division in %q", text)
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("unsupported operator in %q", text)
}
