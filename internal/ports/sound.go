package ports

// SoundPlayer plays the completion notification sound
type SoundPlayer interface {
	// PlayCompletion plays the sound announcing a workspace's agent finished
	PlayCompletion() error
}
