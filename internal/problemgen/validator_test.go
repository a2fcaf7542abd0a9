package problemgen

import "testing"

func validQuestion() *Question {
	return &Question{
		ID:         "q-1",
		Text:       "3 + 4 = ?",
		Answer:     7,
		Options:    []int{5, 7, 9, 10},
		Operation:  OpAddition,
		Difficulty: 1,
	}
}

func TestOptionsValidator(t *testing.T) {
	tests := []struct {
		name    string
		options []int
		answer  int
		wantErr bool
	}{
		{"valid", []int{5, 7, 9, 10}, 7, false},
		{"too few", []int{5, 7, 9}, 7, true},
		{"duplicate", []int{5, 7, 7, 10}, 7, true},
		{"non-positive", []int{0, 7, 9, 10}, 7, true},
		{"answer missing", []int{5, 6, 9, 10}, 7, true},
	}

	v := &OptionsValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			q.Options = tt.options
			q.Answer = tt.answer
			err := v.Validate(q)
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMathCheck(t *testing.T) {
	tests := []struct {
		text    string
		answer  int
		wantErr bool
	}{
		{"3 + 4 = ?", 7, false},
		{"3 + 4 = ?", 8, true},
		{"15 - 6 = ?", 9, false},
		{"4 × 3 = ?", 12, false},
		{"12 ÷ 3 = ?", 4, false},
		{"13 ÷ 3 = ?", 4, true},
		{"What is 3 + 4?", 7, true},
	}

	v := &MathCheckValidator{}
	for _, tt := range tests {
		q := validQuestion()
		q.Text = tt.text
		q.Answer = tt.answer
		err := v.Validate(q)
		if tt.wantErr && err == nil {
			t.Errorf("%q = %d: expected error", tt.text, tt.answer)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%q = %d: unexpected error %v", tt.text, tt.answer, err)
		}
	}
}

func TestCorrectIndex(t *testing.T) {
	q := validQuestion()
	if got := q.CorrectIndex(); got != 1 {
		t.Errorf("CorrectIndex = %d, want 1", got)
	}
	q.Options = []int{1, 2, 3, 4}
	if got := q.CorrectIndex(); got != -1 {
		t.Errorf("CorrectIndex = %d, want -1", got)
	}
}
