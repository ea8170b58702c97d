package session

import (
	"fmt"
	"time"

	"github.com/abhisek/composition/internal/levels"
)

// Progress is the scoring snapshot published after every answer.
type Progress struct {
	Percent                  int
	CountOfRightAnswers      int
	CountOfQuestions         int
	MinCountRightAnswers     int
	MinPercentOfRightAnswers int
	EnoughCount              bool // CountOfRightAnswers reached the minimum
	EnoughPercent            bool // Percent reached the minimum
}

// Text returns the progress line shown under the question.
func (p Progress) Text() string {
	return fmt.Sprintf("Right answers: %d (min %d)", p.CountOfRightAnswers, p.MinCountRightAnswers)
}

// NewProgress computes progress for the given counts against settings.
func NewProgress(right, total int, settings levels.Settings) Progress {
	percent := CalculatePercent(right, total)
	return Progress{
		Percent:                  percent,
		CountOfRightAnswers:      right,
		CountOfQuestions:         total,
		MinCountRightAnswers:     settings.MinCountRightAnswers,
		MinPercentOfRightAnswers: settings.MinPercentOfRightAnswers,
		EnoughCount:              right >= settings.MinCountRightAnswers,
		EnoughPercent:            percent >= settings.MinPercentOfRightAnswers,
	}
}

// CalculatePercent returns floor(right/total*100), or 0 when total is 0.
func CalculatePercent(right, total int) int {
	if total <= 0 {
		return 0
	}
	return right * 100 / total
}

// IsWinner reports whether the counts meet both thresholds of settings.
func IsWinner(right, total int, settings levels.Settings) bool {
	return right >= settings.MinCountRightAnswers &&
		CalculatePercent(right, total) >= settings.MinPercentOfRightAnswers
}

// FormatTime renders a remaining duration as zero-padded mm:ss. Partial
// seconds round up, so "00:00" is only shown once no time is left.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
