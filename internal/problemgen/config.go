package problemgen

// Config controls the behavior of the RandomGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// Seed makes generation reproducible when non-zero.
	// Zero seeds from the runtime's random source.
	Seed uint64

	// MinSumValue is the smallest sum that will be generated.
	MinSumValue int

	// MinAnswerValue is the smallest visible number and right answer
	// when the sum allows it.
	MinAnswerValue int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
		},
		MinSumValue:    2,
		MinAnswerValue: 1,
	}
}
