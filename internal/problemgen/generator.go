package problemgen

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Generator produces composition questions.
type Generator interface {
	// Generate produces a single question for the given bounds.
	// Returns a validated Question or an error.
	// All configured validators are run before returning.
	Generate(input GenerateInput) (*Question, error)
}

// RandomGenerator builds questions from a pseudo-random source.
// It is safe for concurrent use.
type RandomGenerator struct {
	cfg Config

	mu  sync.Mutex
	rng *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator. A non-zero cfg.Seed makes the
// sequence of generated questions reproducible.
func New(cfg Config) *RandomGenerator {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomGenerator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (g *RandomGenerator) Generate(input GenerateInput) (*Question, error) {
	if input.MaxSumValue <= 0 {
		return nil, &ValidationError{
			Validator: "input",
			Message:   fmt.Sprintf("max sum value must be positive, got %d", input.MaxSumValue),
			Retryable: false,
		}
	}

	g.mu.Lock()
	q := g.build(input.MaxSumValue, input.optionCount())
	g.mu.Unlock()

	for _, v := range g.cfg.Validators {
		if vErr := v.Validate(q, input); vErr != nil {
			return nil, vErr
		}
	}
	return q, nil
}

// build assembles one question. Callers must hold g.mu.
func (g *RandomGenerator) build(maxSum, optionCount int) *Question {
	sum := maxSum
	if minSum := g.cfg.MinSumValue; minSum >= 0 && minSum < maxSum {
		sum = g.between(minSum, maxSum)
	}

	// Keep both operands at or above MinAnswerValue when the sum allows it.
	lo, hi := g.cfg.MinAnswerValue, sum-g.cfg.MinAnswerValue
	if lo < 0 || hi < lo {
		lo, hi = 0, sum
	}
	visible := g.between(lo, hi)
	right := sum - visible

	options := g.options(right, maxSum, optionCount)

	return &Question{
		Sum:           sum,
		VisibleNumber: visible,
		Options:       options,
		RightAnswer:   right,
	}
}

// options draws optionCount-1 distinct distractors near right, adds right
// and shuffles the result.
func (g *RandomGenerator) options(right, maxSum, optionCount int) []int {
	floor := g.cfg.MinAnswerValue
	if floor < 0 || right < floor {
		floor = 0
	}
	lo := max(right-optionCount, floor)
	hi := min(maxSum, right+optionCount)
	if hi-lo+1 < optionCount {
		hi = lo + optionCount - 1
	}

	options := make([]int, 0, optionCount)
	seen := map[int]bool{right: true}
	for len(options) < optionCount-1 {
		v := g.between(lo, hi)
		if seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}
	options = append(options, right)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// between returns a uniform value in [lo, hi].
func (g *RandomGenerator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
