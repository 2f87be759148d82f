package gameplay

import (
	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/tiles"
)

// Hint keys. They are gettext message IDs; renderers translate them.
const (
	HintNewMaze     = "HINT_NEW_MAZE"
	HintRestart     = "HINT_RESTART"
	HintWin         = "HINT_WIN"
	HintLost        = "HINT_LOST"
	HintShuffle     = "HINT_MAZE_SHUFFLE"
	HintEffectFaded = "HINT_EFFECT_FADED"

	HintBig      = "HINT_EFFECT_BIG"
	HintSmall    = "HINT_EFFECT_SMALL"
	HintSpeed    = "HINT_EFFECT_SPEED"
	HintConfused = "HINT_EFFECT_CONFUSED"
)

// Hint durations in milliseconds
const (
	NewMazeHintMs     = 2000
	RestartHintMs     = 2000
	TileHintMs        = 1500
	FinishHintMs      = 5000
	EffectHintMs      = 2000
	ShuffleHintMs     = 2000
	EffectFadedHintMs = 1000
)

// HintKeys lists every key gameplay can post, tile hints included
func HintKeys() []string {
	return []string{
		HintNewMaze, HintRestart, HintWin, HintLost, HintShuffle, HintEffectFaded,
		HintBig, HintSmall, HintSpeed, HintConfused,
		tiles.HintPortal, tiles.HintSpring, tiles.HintSlip,
	}
}

// effectHint returns the hint announcing that kind has started
func effectHint(kind entities.EffectKind) string {
	switch kind {
	case entities.EffectBig:
		return HintBig
	case entities.EffectSmall:
		return HintSmall
	case entities.EffectSpeed:
		return HintSpeed
	case entities.EffectConfused:
		return HintConfused
	default:
		return ""
	}
}
