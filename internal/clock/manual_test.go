package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []string
}

func (r *recorder) tick()   { r.events = append(r.events, "tick") }
func (r *recorder) expire() { r.events = append(r.events, "expire") }

func TestManual_TicksThenExpires(t *testing.T) {
	c := NewManual()
	var r recorder
	c.Start(time.Second, 3*time.Second, r.tick, r.expire)

	c.Advance(500 * time.Millisecond)
	assert.Empty(t, r.events)

	c.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"tick"}, r.events)

	c.Advance(2 * time.Second)
	assert.Equal(t, []string{"tick", "tick", "expire"}, r.events)
	assert.Equal(t, 0, c.Active())

	c.Advance(10 * time.Second)
	assert.Len(t, r.events, 3, "nothing fires after expiry")
}

func TestManual_TotalNotMultipleOfInterval(t *testing.T) {
	c := NewManual()
	var r recorder
	c.Start(time.Second, 2500*time.Millisecond, r.tick, r.expire)

	c.Advance(time.Hour)
	assert.Equal(t, []string{"tick", "tick", "expire"}, r.events)
}

func TestManual_ZeroIntervalOnlyExpires(t *testing.T) {
	c := NewManual()
	var r recorder
	c.Start(0, 2*time.Second, r.tick, r.expire)

	c.Advance(time.Second)
	assert.Empty(t, r.events)
	c.Advance(time.Second)
	assert.Equal(t, []string{"expire"}, r.events)
}

func TestManual_ZeroTotalExpiresOnNextAdvance(t *testing.T) {
	c := NewManual()
	var r recorder
	c.Start(time.Second, 0, r.tick, r.expire)

	c.Advance(0)
	assert.Equal(t, []string{"expire"}, r.events)
}

func TestManual_Cancel(t *testing.T) {
	c := NewManual()
	var r recorder
	timer := c.Start(time.Second, 3*time.Second, r.tick, r.expire)

	c.Advance(time.Second)
	timer.Cancel()
	timer.Cancel()
	c.Advance(5 * time.Second)

	assert.Equal(t, []string{"tick"}, r.events)
	assert.Equal(t, 0, c.Active())
}

func TestManual_CancelFromCallback(t *testing.T) {
	c := NewManual()
	var r recorder
	var timer Timer
	timer = c.Start(time.Second, 5*time.Second, func() {
		r.tick()
		timer.Cancel()
	}, r.expire)

	c.Advance(5 * time.Second)
	assert.Equal(t, []string{"tick"}, r.events)
}

func TestManual_MultipleTimersInDeadlineOrder(t *testing.T) {
	c := NewManual()
	var order []string
	c.Start(2*time.Second, 2*time.Second, nil, func() { order = append(order, "a") })
	c.Advance(500 * time.Millisecond)
	c.Start(time.Second, time.Second, nil, func() { order = append(order, "b") })

	require.Equal(t, 2, c.Active())
	c.Advance(3 * time.Second)
	assert.Equal(t, []string{"b", "a"}, order)
	assert.Equal(t, 3500*time.Millisecond, c.Elapsed())
}

func TestManual_StartFromCallback(t *testing.T) {
	c := NewManual()
	var r recorder
	c.Start(time.Second, time.Second, nil, func() {
		c.Start(time.Second, time.Second, nil, r.expire)
	})

	c.Advance(time.Second)
	assert.Empty(t, r.events)
	c.Advance(time.Second)
	assert.Equal(t, []string{"expire"}, r.events)
}
