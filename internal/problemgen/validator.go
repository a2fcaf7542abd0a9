package problemgen

import "fmt"

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the validators run on every generated question.
func DefaultValidators() []Validator {
	return []Validator{
		&OptionsValidator{},
		&MathCheckValidator{},
	}
}

// Validate runs the default validators against q.
func Validate(q *Question) error {
	for _, v := range DefaultValidators() {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}

// OptionsValidator enforces the option invariants: exactly OptionCount
// distinct positive values, exactly one of which is the answer.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question) *ValidationError {
	if len(q.Options) != OptionCount {
		return v.fail("expected %d options, got %d", OptionCount, len(q.Options))
	}

	seen := make(map[int]bool, len(q.Options))
	matches := 0
	for _, o := range q.Options {
		if o <= 0 {
			return v.fail("option %d is not positive", o)
		}
		if seen[o] {
			return v.fail("duplicate option %d", o)
		}
		seen[o] = true
		if o == q.Answer {
			matches++
		}
	}
	if matches != 1 {
		return v.fail("answer %d appears %d times in options", q.Answer, matches)
	}
	return nil
}

func (v *OptionsValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}
