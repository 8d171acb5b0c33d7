// Package sound is the fire-and-forget notification facility. Failures are
// ignored; a missed chime must never affect task state.
package sound

import (
	"io"
	"os"
)

// Player emits a notification for a named event (check, critical, jackpot,
// levelUp, timerFinish).
type Player struct {
	out     io.Writer
	enabled bool
	volume  float64
}

func NewPlayer(enabled bool, volume float64) *Player {
	return &Player{out: os.Stdout, enabled: enabled, volume: volume}
}

// Emit rings the terminal bell for the event. Bigger events ring more.
// Volume 0 (or disabled) is silent.
func (p *Player) Emit(event string) {
	if !p.enabled || p.volume <= 0 {
		return
	}
	rings := 1
	switch event {
	case "jackpot", "levelUp":
		rings = 3
	case "critical":
		rings = 2
	}
	for i := 0; i < rings; i++ {
		_, _ = p.out.Write([]byte{'\a'})
	}
}

// Null is a no-op notifier for tests and quiet contexts.
type Null struct{}

func (Null) Emit(string) {}
