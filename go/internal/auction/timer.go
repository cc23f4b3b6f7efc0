package auction

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// countdown is a league's single cancellable delayed task. Replacing or
// stopping it is atomic with respect to concurrent replacements, but
// deliberately independent of the league lock: a stale timer that loses the
// race fires anyway and is neutralized by the deadline re-check inside the
// lock.
type countdown struct {
	mu     sync.Mutex
	timer  clockwork.Timer
	cancel chan struct{}
}

// replace cancels and disposes any scheduled expiry before arming a new one.
// fire runs on its own goroutine; panics are logged so one bad expiry cannot
// take down the league's timer infrastructure.
func (c *countdown) replace(clock clockwork.Clock, d time.Duration, fire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	t := clock.NewTimer(d)
	cancel := make(chan struct{})
	c.timer = t
	c.cancel = cancel

	go func() {
		select {
		case <-t.Chan():
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Msg("countdown expiry panicked")
				}
			}()
			fire()
		case <-cancel:
			stopAndDrainTimer(t)
		}
	}()
}

// stop cancels the scheduled expiry, if any.
func (c *countdown) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *countdown) stopLocked() {
	if c.cancel != nil {
		close(c.cancel)
		c.cancel = nil
		c.timer = nil
	}
}

// stopAndDrainTimer safely stops a timer and drains its channel to prevent
// goroutine leaks, per the time.Timer.Stop documentation.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
