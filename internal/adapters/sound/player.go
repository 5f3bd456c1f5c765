package sound

import "fmt"

// Player implements ports.SoundPlayer. It is the terminal analog of
// the haptic feedback the app gives on session transitions.
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays the default feedback sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent("complete")
}

// PlaySoundForEvent plays different sounds based on the event type
// ("begin", "complete", "favorite"). Platform-specific implementations
// are in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	return playForEvent(eventType)
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}

// Silent is a no-op player for contexts with no local audio output,
// such as SSH-hosted sessions.
type Silent struct{}

func (Silent) PlaySound() error               { return nil }
func (Silent) PlaySoundForEvent(string) error { return nil }
