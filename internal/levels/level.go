package levels

import (
	"fmt"
	"strings"
	"time"
)

// Level identifies a difficulty tier.
type Level string

const (
	LevelTest   Level = "test"
	LevelEasy   Level = "easy"
	LevelNormal Level = "normal"
	LevelHard   Level = "hard"
)

// All returns all levels in display order.
func All() []Level {
	return []Level{
		LevelTest,
		LevelEasy,
		LevelNormal,
		LevelHard,
	}
}

func (l Level) String() string {
	return string(l)
}

// DisplayName returns a human-readable name for a level.
func (l Level) DisplayName() string {
	switch l {
	case LevelTest:
		return "Test"
	case LevelEasy:
		return "Easy"
	case LevelNormal:
		return "Normal"
	case LevelHard:
		return "Hard"
	default:
		return string(l)
	}
}

// Parse maps user input (case-insensitive, surrounding space ignored) to a Level.
func Parse(s string) (Level, error) {
	candidate := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[candidate]; !ok {
		return "", &ConfigurationError{Level: Level(s)}
	}
	return candidate, nil
}

// Settings holds the rules of a session for one level.
type Settings struct {
	// MaxSumValue is the upper bound for the generated sum.
	MaxSumValue int `yaml:"max_sum_value"`

	// MinCountRightAnswers is how many right answers a win requires.
	MinCountRightAnswers int `yaml:"min_count_right_answers"`

	// MinPercentOfRightAnswers is the accuracy (0-100) a win requires.
	MinPercentOfRightAnswers int `yaml:"min_percent_of_right_answers"`

	// GameTimeInSeconds is the session length.
	GameTimeInSeconds int `yaml:"game_time_in_seconds"`
}

// GameTime returns the session length as a duration.
func (s Settings) GameTime() time.Duration {
	return time.Duration(s.GameTimeInSeconds) * time.Second
}

// Validate checks that every field is within its allowed range.
func (s Settings) Validate() error {
	if s.MaxSumValue <= 0 {
		return fmt.Errorf("max sum value must be positive, got %d", s.MaxSumValue)
	}
	if s.MinCountRightAnswers < 0 {
		return fmt.Errorf("min count of right answers must not be negative, got %d", s.MinCountRightAnswers)
	}
	if s.MinPercentOfRightAnswers < 0 || s.MinPercentOfRightAnswers > 100 {
		return fmt.Errorf("min percent of right answers must be within 0-100, got %d", s.MinPercentOfRightAnswers)
	}
	if s.GameTimeInSeconds <= 0 {
		return fmt.Errorf("game time must be positive, got %d", s.GameTimeInSeconds)
	}
	return nil
}
