package levels

import "fmt"

// ConfigurationError is returned when a level has no compiled-in settings.
type ConfigurationError struct {
	Level Level
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown level %q", string(e.Level))
}

// registry holds the compiled-in settings for every level.
var registry = map[Level]Settings{
	LevelTest: {
		MaxSumValue:              10,
		MinCountRightAnswers:     3,
		MinPercentOfRightAnswers: 50,
		GameTimeInSeconds:        8,
	},
	LevelEasy: {
		MaxSumValue:              10,
		MinCountRightAnswers:     10,
		MinPercentOfRightAnswers: 70,
		GameTimeInSeconds:        60,
	},
	LevelNormal: {
		MaxSumValue:              20,
		MinCountRightAnswers:     20,
		MinPercentOfRightAnswers: 80,
		GameTimeInSeconds:        40,
	},
	LevelHard: {
		MaxSumValue:              30,
		MinCountRightAnswers:     30,
		MinPercentOfRightAnswers: 90,
		GameTimeInSeconds:        40,
	},
}

// Resolve returns the settings for a level.
// An unknown level is a configuration error, never silently replaced by a default.
func Resolve(level Level) (Settings, error) {
	s, ok := registry[level]
	if !ok {
		return Settings{}, &ConfigurationError{Level: level}
	}
	return s, nil
}

// MustResolve is like Resolve but panics on an unknown level.
func MustResolve(level Level) Settings {
	s, err := Resolve(level)
	if err != nil {
		panic(err)
	}
	return s
}
