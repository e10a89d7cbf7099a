//go:build !darwin && !linux

package sound

// playCompletion falls back to the terminal bell on unsupported platforms
func playCompletion() error {
	return terminalBell()
}
