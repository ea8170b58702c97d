package problemgen

import "fmt"

// StructuralValidator checks the shape of the option list: its length,
// distinctness, sign, and that the right answer is offered exactly once.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	want := input.optionCount()
	if len(q.Options) != want {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", want, len(q.Options)),
			Retryable: true,
		}
	}

	seen := make(map[int]bool, len(q.Options))
	rightCount := 0
	for _, opt := range q.Options {
		if opt < 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is negative", opt),
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is duplicated", opt),
				Retryable: true,
			}
		}
		seen[opt] = true
		if opt == q.RightAnswer {
			rightCount++
		}
	}

	if rightCount != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("right answer %d is not among the options", q.RightAnswer),
			Retryable: true,
		}
	}
	return nil
}
