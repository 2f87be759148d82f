// Package state holds the data of one maze session and the read-only
// snapshot handed to renderers.
package state

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/entities"
)

// Status is where a session stands
type Status int

// Session statuses
const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

// String returns the name of the status
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Hint is a short message shown until a deadline. Key is a gettext message ID.
type Hint struct {
	Key   string
	Until int64
}

// Visible reports whether the hint should still be displayed at now
func (h Hint) Visible(now int64) bool {
	return h.Key != "" && now < h.Until
}

// Session represents the state of one maze run
type Session struct {
	ID uuid.UUID

	Grid   *world.Grid
	Exit   world.Position
	Tiles  mapset.Set[world.Position] // where special tiles were scattered
	Player *entities.Player
	Enemy  *entities.Enemy // nil unless pursuit is enabled

	Status      Status
	Hint        Hint
	StartedAt   int64
	EndedAt     int64 // set when the session leaves Playing
	LastEventAt int64
}

// NewSession creates a playing session on grid with the player on the start cell
func NewSession(grid *world.Grid, exit world.Position, tiles mapset.Set[world.Position], now int64) *Session {
	return &Session{
		ID:          uuid.New(),
		Grid:        grid,
		Exit:        exit,
		Tiles:       tiles,
		Player:      entities.NewPlayer(grid.Start()),
		Status:      StatusPlaying,
		StartedAt:   now,
		LastEventAt: now,
	}
}

// Post replaces the current hint with key for duration milliseconds
func (s *Session) Post(key string, now, duration int64) {
	s.Hint = Hint{Key: key, Until: now + duration}
}

// Playing reports whether the session still accepts moves
func (s *Session) Playing() bool {
	return s.Status == StatusPlaying
}

// Finish moves a playing session into a terminal status. Returns false if the
// session had already finished.
func (s *Session) Finish(status Status, now int64) bool {
	if !s.Playing() || status == StatusPlaying {
		return false
	}
	s.Status = status
	s.EndedAt = now
	return true
}

// ElapsedMillis returns the time spent in the run. The clock stops once the
// session is won or lost.
func (s *Session) ElapsedMillis(now int64) int64 {
	if !s.Playing() {
		return s.EndedAt - s.StartedAt
	}
	return now - s.StartedAt
}
