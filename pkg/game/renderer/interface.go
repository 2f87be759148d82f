// Package renderer defines the contract between the simulation and its
// front ends, plus the shared hint/markup translation helpers.
package renderer

import (
	"crazymaze/pkg/game/state"
)

// Renderer draws snapshots. Implementations never mutate the session; they
// only see copies taken after a tick.
type Renderer interface {
	// Init prepares the output (colours, raw mode, window)
	Init() error

	// Render draws one frame
	Render(snap state.Snapshot)

	// Close restores whatever Init changed
	Close()
}
