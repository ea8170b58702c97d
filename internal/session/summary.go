package session

import "github.com/abhisek/composition/internal/levels"

// Result is the terminal outcome of a session, produced once at expiry.
type Result struct {
	Winner              bool
	CountOfRightAnswers int
	CountOfQuestions    int
	Settings            levels.Settings
	Level               levels.Level
	SessionID           string
}

// Percent returns the floor percentage of right answers.
func (r Result) Percent() int {
	return CalculatePercent(r.CountOfRightAnswers, r.CountOfQuestions)
}

// buildResult creates the Result for the current counts.
func buildResult(id string, level levels.Level, settings levels.Settings, right, total int) Result {
	return Result{
		Winner:              IsWinner(right, total, settings),
		CountOfRightAnswers: right,
		CountOfQuestions:    total,
		Settings:            settings,
		Level:               level,
		SessionID:           id,
	}
}
