package problemgen

// DefaultOptionCount is the number of options offered for every question.
const DefaultOptionCount = 6

// Question is a composition question: find the number that, added to
// VisibleNumber, gives Sum.
type Question struct {
	// Sum is the target shown to the player.
	Sum int

	// VisibleNumber is the known operand, always within [0, Sum].
	VisibleNumber int

	// Options are the candidate answers in display order.
	// All values are distinct and non-negative; RightAnswer appears exactly once.
	Options []int

	// RightAnswer is Sum - VisibleNumber.
	RightAnswer int
}

// GenerateInput holds the bounds for generating one question.
type GenerateInput struct {
	// MaxSumValue is the upper bound for the generated sum. Must be positive.
	MaxSumValue int

	// OptionCount is the number of options to produce.
	// Zero or negative means DefaultOptionCount.
	OptionCount int
}

// optionCount returns the effective option count.
func (in GenerateInput) optionCount() int {
	if in.OptionCount <= 0 {
		return DefaultOptionCount
	}
	return in.OptionCount
}
