package runner

// AudioProvider plays the game's sound cues. Calls must not block the frame.
type AudioProvider interface {
	Jump()
	Pickup()
	MusicStart()
}

// NopAudio is a silent AudioProvider.
type NopAudio struct{}

func (NopAudio) Jump()       {}
func (NopAudio) Pickup()     {}
func (NopAudio) MusicStart() {}
