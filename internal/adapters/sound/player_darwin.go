//go:build darwin

package sound

import "os/exec"

// playCompletion plays the completion sound on macOS using afplay
func playCompletion() error {
	soundFiles := []string{
		"/System/Library/Sounds/Glass.aiff",
		"/System/Library/Sounds/Tink.aiff",
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
