package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"crazymaze/pkg/engine/world"
)

// slide eases a sprite from one cell to the next
type slide struct {
	from, to world.Position
	tween    *gween.Tween
	progress float32
}

// newSlide starts at rest on pos
func newSlide(pos world.Position) *slide {
	return &slide{from: pos, to: pos, progress: 1}
}

// moveTo retargets the slide. Steps to an adjacent cell are eased; longer
// jumps (portals, springs, slips, resets) snap.
func (s *slide) moveTo(pos world.Position) {
	if pos == s.to {
		return
	}
	current := s.to
	s.to = pos
	if current.Manhattan(pos) != 1 {
		s.from = pos
		s.tween = nil
		s.progress = 1
		return
	}
	s.from = current
	s.progress = 0
	s.tween = gween.New(0, 1, slideSeconds, ease.OutQuad)
}

// update advances the tween by dt seconds
func (s *slide) update(dt float32) {
	if s.tween == nil {
		return
	}
	current, finished := s.tween.Update(dt)
	s.progress = current
	if finished {
		s.progress = 1
		s.tween = nil
	}
}

// at returns the interpolated cell coordinates
func (s *slide) at() (row, col float64) {
	p := float64(s.progress)
	row = float64(s.from.Row) + (float64(s.to.Row)-float64(s.from.Row))*p
	col = float64(s.from.Col) + (float64(s.to.Col)-float64(s.from.Col))*p
	return row, col
}

// getPulsingExitColor returns a pulsing color for the exit tile
// Uses a sine wave to create a smooth pulsing effect
func getPulsingExitColor() color.Color {
	const pulsePeriod = 2000.0
	now := time.Now().UnixMilli()

	pulsePhase := float64(now%int64(pulsePeriod)) / pulsePeriod
	pulseValue := (math.Sin(pulsePhase*2*math.Pi) + 1.0) / 2.0

	// Pulse between 50% and 100% brightness
	brightness := 0.5 + 0.5*pulseValue

	return color.RGBA{
		uint8(float64(colorExit.R) * brightness),
		uint8(float64(colorExit.G) * brightness),
		uint8(float64(colorExit.B) * brightness),
		colorExit.A,
	}
}
