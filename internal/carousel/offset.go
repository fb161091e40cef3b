package carousel

import (
	"math"
	"time"

	"github.com/benbjohnson/clock"
)

// OffsetConfig parameterizes a pixel-offset strip.
type OffsetConfig struct {
	Interval  time.Duration
	ItemCount int
	ItemWidth float64
	Viewport  float64
	// Step is the scroll distance per tick in pixels. When zero,
	// StepFactor*Viewport is used instead.
	Step       float64
	StepFactor float64
	// HalfStepMargin reverses within half a step of either end instead of
	// a full step.
	HalfStepMargin bool
	Pausable       bool
}

// OffsetStrip scrolls a strip by a fixed pixel step each tick and reverses
// direction at the boundaries instead of stalling there.
type OffsetStrip struct {
	*controller

	current   float64
	maxScroll float64
	stepSize  float64
	margin    float64
	nudge     float64
}

// NewOffsetStrip builds the strip and, when there is anything to scroll,
// enters Running. A strip whose content fits the viewport stays Idle.
func NewOffsetStrip(clk clock.Clock, cfg OffsetConfig) *OffsetStrip {
	step := cfg.Step
	if step == 0 {
		step = cfg.StepFactor * cfg.Viewport
	}
	margin := step
	if cfg.HalfStepMargin {
		margin = step / 2
	}

	s := &OffsetStrip{
		controller: newController(clk, cfg.Interval, cfg.Pausable),
		maxScroll:  math.Max(0, float64(cfg.ItemCount)*cfg.ItemWidth-cfg.Viewport),
		stepSize:   step,
		margin:     margin,
		nudge:      cfg.Viewport / 2,
	}
	s.controller.advance = s.advance

	if cfg.ItemCount > 0 && s.maxScroll > 0 {
		s.Start()
	}
	return s
}

// Offset returns the current scroll offset in pixels.
func (s *OffsetStrip) Offset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// MaxScroll returns the scrollable range upper bound.
func (s *OffsetStrip) MaxScroll() float64 {
	return s.maxScroll
}

// Nudge scrolls half a viewport in the given direction, independent of the
// timer. The autonomous schedule is not reset.
func (s *OffsetStrip) Nudge(direction int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = clamp(s.current+float64(direction)*s.nudge, 0, s.maxScroll)
}

// advance applies one tick. If the next target would cross into the boundary
// margin the direction flips first (boundary repulsion), and the applied
// target is always clamped into [0, maxScroll] as a final bound.
func (s *OffsetStrip) advance(direction int) int {
	target := s.current + float64(direction)*s.stepSize
	if direction > 0 && target > s.maxScroll-s.margin {
		direction = -1
		target = s.current + float64(direction)*s.stepSize
	} else if direction < 0 && target < s.margin {
		direction = +1
		target = s.current + float64(direction)*s.stepSize
	}
	s.current = clamp(target, 0, s.maxScroll)
	return direction
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
