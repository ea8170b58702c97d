package session

import (
	"errors"
	"fmt"
)

// Phase represents the lifecycle phase of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Created, Start not yet called
	PhaseRunning                 // Serving questions, clock running
	PhaseFinished                // Expired or stopped; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrNotRunning is matched by InvalidStateError values for operations that
// require a running session.
var ErrNotRunning = errors.New("session not running")

// InvalidStateError reports an operation attempted in the wrong phase.
type InvalidStateError struct {
	Op    string
	Phase Phase
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("session: cannot %s in phase %s", e.Op, e.Phase)
}

func (e *InvalidStateError) Unwrap() error {
	if e.Phase != PhaseRunning {
		return ErrNotRunning
	}
	return nil
}
