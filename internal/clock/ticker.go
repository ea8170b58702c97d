package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is a Clock backed by real time. Each timer runs on its own
// goroutine; callbacks are invoked from that goroutine.
type Ticker struct{}

var _ Clock = Ticker{}

// NewTicker returns a real-time clock.
func NewTicker() Ticker {
	return Ticker{}
}

func (Ticker) Start(interval, total time.Duration, onTick, onExpire func()) Timer {
	interval, total = normalize(interval, total)
	t := &tickerTimer{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go t.run(interval, total, onTick, onExpire)
	return t
}

type tickerTimer struct {
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
	canceled atomic.Bool
}

// run waits for each boundary measured from the start instant, so a slow
// callback delays one delivery but never shifts the ones after it.
func (t *tickerTimer) run(interval, total time.Duration, onTick, onExpire func()) {
	defer close(t.done)

	start := time.Now()
	for n := 1; ; n++ {
		at := boundary(n, interval, total)

		wait := time.NewTimer(time.Until(start.Add(at)))
		select {
		case <-t.stop:
			wait.Stop()
			return
		case <-wait.C:
		}

		if t.canceled.Load() {
			return
		}
		if at >= total {
			if onExpire != nil {
				onExpire()
			}
			return
		}
		if onTick != nil {
			onTick()
		}
	}
}

func (t *tickerTimer) Cancel() {
	t.once.Do(func() {
		t.canceled.Store(true)
		close(t.stop)
	})
}

// Done is closed once the timer goroutine has exited, after expiry or
// cancellation.
func (t *tickerTimer) Done() <-chan struct{} {
	return t.done
}
