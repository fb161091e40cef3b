// Package carousel implements the timer-driven rotation state machine behind
// the homepage strips. One controller drives one strip; the index variant
// snaps whole slides, the offset variant scrolls by pixels and reverses at
// the ends.
package carousel

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// State is the rotation lifecycle of a strip.
type State int

const (
	// Idle means there is nothing to rotate (no items).
	Idle State = iota
	// Running means a recurring tick is scheduled.
	Running
	// Paused means the timer is suspended but direction is retained.
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// controller owns the recurring tick for one strip. The step itself is
// delegated to the owning variant through advance, which applies one step
// and returns the direction for the next tick.
type controller struct {
	clk      clock.Clock
	interval time.Duration
	pausable bool

	mu        sync.Mutex
	state     State
	direction int
	cancel    chan struct{}
	advance   func(direction int) int
}

func newController(clk clock.Clock, interval time.Duration, pausable bool) *controller {
	return &controller{
		clk:       clk,
		interval:  interval,
		pausable:  pausable,
		direction: +1,
	}
}

// Start enters Running with direction +1 and schedules the recurring tick.
// A strip with no items stays Idle; the variant guards that by not calling
// Start.
func (c *controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		return
	}
	c.state = Running
	c.direction = +1
	c.armLocked()
}

// Pause cancels the pending tick and suspends the timer. Direction is
// retained. Non-pausable strips ignore the signal.
func (c *controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.pausable || c.state != Running {
		return
	}
	c.stopLocked()
	c.state = Paused
}

// Resume re-enters Running with the retained direction. The next tick fires
// a full interval from now; there is no immediate tick.
func (c *controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Paused {
		return
	}
	c.state = Running
	c.armLocked()
}

// Stop cancels any pending tick unconditionally. A stopped controller never
// fires against its discarded view.
func (c *controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.state = Idle
}

// State returns the current lifecycle state.
func (c *controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Direction returns +1 or -1.
func (c *controller) Direction() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction
}

func (c *controller) armLocked() {
	cancel := make(chan struct{})
	c.cancel = cancel

	go func() {
		ticker := c.clk.Ticker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-cancel:
				return
			case <-ticker.C:
				c.tick(cancel)
			}
		}
	}()
}

func (c *controller) stopLocked() {
	if c.cancel != nil {
		close(c.cancel)
		c.cancel = nil
	}
}

func (c *controller) tick(cancel chan struct{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// a stale ticker may race its own cancellation; never step after
	// the controller moved on
	if c.cancel != cancel || c.state != Running {
		return
	}
	c.direction = c.advance(c.direction)
}

// step applies a single tick synchronously. Used by tests to drive the
// machine without a clock.
func (c *controller) step() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.direction = c.advance(c.direction)
}
