//go:build darwin

package sound

import "os/exec"

// playForEvent plays sounds on macOS using afplay
func playForEvent(eventType string) error {
	var soundFiles []string

	switch eventType {
	case "begin":
		// Session begins - welcoming sound
		soundFiles = []string{
			"/System/Library/Sounds/Submarine.aiff",
			"/System/Library/Sounds/Purr.aiff",
		}
	case "complete":
		// Session finished - calm, completion sound
		soundFiles = []string{
			"/System/Library/Sounds/Glass.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	case "favorite":
		// Question favorited - light tap
		soundFiles = []string{
			"/System/Library/Sounds/Pop.aiff",
			"/System/Library/Sounds/Tink.aiff",
		}
	default:
		soundFiles = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
