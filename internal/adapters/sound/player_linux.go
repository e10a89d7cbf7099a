//go:build linux

package sound

import "os/exec"

// playCompletion plays the completion sound on Linux using paplay
// (PulseAudio) or aplay (ALSA)
func playCompletion() error {
	sounds := []struct {
		cmd  string
		args []string
	}{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
		{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
	}

	for _, s := range sounds {
		cmd := exec.Command(s.cmd, s.args...)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
