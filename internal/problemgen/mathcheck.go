package problemgen

import "fmt"

// MathCheckValidator recomputes the right answer from the sum and the
// visible number.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.VisibleNumber < 0 || q.VisibleNumber > q.Sum {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("visible number %d outside [0, %d]", q.VisibleNumber, q.Sum),
			Retryable: true,
		}
	}
	if computed := q.Sum - q.VisibleNumber; computed != q.RightAnswer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", computed, q.RightAnswer),
			Retryable: true,
		}
	}
	return nil
}
