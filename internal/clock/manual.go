package clock

import (
	"sync"
	"time"
)

// Manual is a Clock that only moves when Advance is called. Callbacks run
// synchronously on the goroutine calling Advance, in deadline order.
type Manual struct {
	mu      sync.Mutex
	elapsed time.Duration
	timers  []*manualTimer
}

var _ Clock = (*Manual)(nil)

// NewManual returns a stopped manual clock at elapsed time zero.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Start(interval, total time.Duration, onTick, onExpire func()) Timer {
	interval, total = normalize(interval, total)

	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTimer{
		clock:    m,
		start:    m.elapsed,
		interval: interval,
		total:    total,
		onTick:   onTick,
		onExpire: onExpire,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, delivering every tick and expiry
// that falls due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.elapsed + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next, at := m.nextDueLocked(target)
		if next == nil {
			m.elapsed = target
			m.pruneLocked()
			m.mu.Unlock()
			return
		}
		m.elapsed = at
		fire := next.deliverLocked()
		m.mu.Unlock()

		// Callbacks run unlocked so they may cancel or start timers.
		if fire != nil {
			fire()
		}
	}
}

// Elapsed returns how far the clock has been advanced.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Active returns the number of timers that are neither expired nor canceled.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.finished {
			n++
		}
	}
	return n
}

func (m *Manual) nextDueLocked(target time.Duration) (*manualTimer, time.Duration) {
	var next *manualTimer
	var nextAt time.Duration
	for _, t := range m.timers {
		if t.finished {
			continue
		}
		at := t.start + boundary(t.delivered+1, t.interval, t.total)
		if at > target {
			continue
		}
		if next == nil || at < nextAt {
			next, nextAt = t, at
		}
	}
	return next, nextAt
}

func (m *Manual) pruneLocked() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.finished {
			live = append(live, t)
		}
	}
	m.timers = live
}

type manualTimer struct {
	clock    *Manual
	start    time.Duration
	interval time.Duration
	total    time.Duration
	onTick   func()
	onExpire func()

	delivered int
	finished  bool
}

// deliverLocked records the next delivery and returns its callback.
func (t *manualTimer) deliverLocked() func() {
	t.delivered++
	if boundary(t.delivered, t.interval, t.total) >= t.total {
		t.finished = true
		return t.onExpire
	}
	return t.onTick
}

func (t *manualTimer) Cancel() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.finished = true
}
