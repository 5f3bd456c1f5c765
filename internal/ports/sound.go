package ports

// SoundPlayer plays short feedback sounds for session transitions.
type SoundPlayer interface {
	PlaySound() error
	PlaySoundForEvent(eventType string) error
}
