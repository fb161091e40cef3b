package flashdeal

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Expired is the canonical countdown text once endTime has passed.
const Expired = "Expired"

// FormatTimeLeft renders the time remaining until endTime as zero-padded
// HH:MM:SS using floor division. Hours are not wrapped at 24. Pure and
// deterministic: identical (endTime, now) pairs always yield the same text.
func FormatTimeLeft(endTime, now time.Time) string {
	diff := endTime.Sub(now)
	if diff <= 0 {
		return Expired
	}
	h := int(diff / time.Hour)
	m := int(diff/time.Minute) % 60
	s := int(diff/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Countdown re-evaluates the remaining-time text once per second while the
// campaign end time lies in the future. Re-arming with a new end time tears
// the previous ticker down first, so two tickers never coexist.
type Countdown struct {
	clk clock.Clock

	mu      sync.Mutex
	endTime time.Time
	text    string
	cancel  chan struct{}
}

func NewCountdown(clk clock.Clock) *Countdown {
	return &Countdown{clk: clk}
}

// Set replaces the tracked end time. A zero end time clears the countdown.
func (c *Countdown) Set(endTime time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
	c.endTime = endTime

	if endTime.IsZero() {
		c.text = ""
		return
	}

	c.text = FormatTimeLeft(endTime, c.clk.Now())
	if c.text == Expired {
		return
	}

	cancel := make(chan struct{})
	c.cancel = cancel
	go c.run(endTime, cancel)
}

// Text returns the last evaluated countdown text. Empty when no end time is
// tracked.
func (c *Countdown) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Stop cancels the ticker. Safe to call repeatedly.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Countdown) stopLocked() {
	if c.cancel != nil {
		close(c.cancel)
		c.cancel = nil
	}
}

func (c *Countdown) run(endTime time.Time, cancel chan struct{}) {
	ticker := c.clk.Ticker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			text := FormatTimeLeft(endTime, c.clk.Now())

			c.mu.Lock()
			if c.cancel != cancel {
				// replaced while we were ticking
				c.mu.Unlock()
				return
			}
			c.text = text
			if text == Expired {
				c.cancel = nil
				c.mu.Unlock()
				return
			}
			c.mu.Unlock()
		}
	}
}
