package carousel

import (
	"time"

	"github.com/benbjohnson/clock"
)

// IndexStrip snaps slide to slide: each tick moves one whole item and wraps
// modularly. Used by the top banner.
type IndexStrip struct {
	*controller

	count int
	index int
}

// NewIndexStrip builds the strip and enters Running when there is at least
// one item. Index strips are not pausable; manual navigation coexists with
// the timer instead.
func NewIndexStrip(clk clock.Clock, interval time.Duration, count int) *IndexStrip {
	s := &IndexStrip{
		controller: newController(clk, interval, false),
		count:      count,
	}
	s.controller.advance = s.advance

	if count > 0 {
		s.Start()
	}
	return s
}

// Index returns the currently shown slide.
func (s *IndexStrip) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Count returns the number of slides.
func (s *IndexStrip) Count() int {
	return s.count
}

// Navigate jumps to the requested slide immediately, wrapping modularly.
// The autonomous timer keeps its own phase; manual navigation does not
// reset it.
func (s *IndexStrip) Navigate(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		return
	}
	s.index = ((index % s.count) + s.count) % s.count
}

func (s *IndexStrip) advance(direction int) int {
	s.index = ((s.index+direction)%s.count + s.count) % s.count
	return direction
}
