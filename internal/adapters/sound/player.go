// Package sound plays the completion notification used by the watch
// dashboard. Platform-specific implementations live in player_*.go files
// behind build tags, falling back to the terminal bell.
package sound

import (
	"fmt"

	"workspace/internal/ports"
)

// Player implements ports.SoundPlayer
type Player struct{}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlayCompletion plays the sound announcing a workspace's agent finished
func (p *Player) PlayCompletion() error {
	return playCompletion()
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
