//go:build windows

package sound

import "os/exec"

// playForEvent plays sounds on Windows using PowerShell
func playForEvent(eventType string) error {
	var soundCommands []string

	switch eventType {
	case "begin":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Question.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case "complete":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Asterisk.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	case "favorite":
		soundCommands = []string{
			"[System.Media.SystemSounds]::Exclamation.Play()",
			"[System.Media.SystemSounds]::Beep.Play()",
		}
	default:
		soundCommands = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
