package auction

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownFires(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fired atomic.Int32
	var c countdown

	c.replace(clock, time.Minute, func() { fired.Add(1) })

	clock.BlockUntil(1)
	clock.Advance(time.Minute)

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
}

func TestCountdownStopPreventsFire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var fired atomic.Int32
	var c countdown

	c.replace(clock, time.Minute, func() { fired.Add(1) })
	c.stop()

	// Let the cancelled watcher drain its timer before the clock moves.
	time.Sleep(10 * time.Millisecond)
	clock.Advance(2 * time.Minute)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestCountdownReplaceCancelsPrevious(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var first, second atomic.Int32
	var c countdown

	c.replace(clock, time.Minute, func() { first.Add(1) })
	c.replace(clock, 2*time.Minute, func() { second.Add(1) })

	// Let the cancelled watcher drain its timer before the clock moves.
	time.Sleep(10 * time.Millisecond)
	clock.Advance(time.Minute)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load(), "replaced countdown must not fire")

	clock.Advance(time.Minute)
	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
}

func TestCountdownStopIsIdempotent(t *testing.T) {
	var c countdown
	c.stop()
	c.stop()

	clock := clockwork.NewFakeClock()
	c.replace(clock, time.Minute, func() {})
	c.stop()
	c.stop()
}
