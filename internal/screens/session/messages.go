package session

import "time"

// timerTickMsg advances the session clock. ID ties it to the session that
// scheduled it so ticks from an abandoned session are dropped.
type timerTickMsg struct {
	ID string
	At time.Time
}

// finishedMsg is sent once the controller has produced its result.
type finishedMsg struct{}
