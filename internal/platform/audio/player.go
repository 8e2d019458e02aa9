// Package audio plays the runner's sound cues through the system speaker.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesises the jump, pickup and music cues. Every method is a
// no-op until Initialize succeeds, so a machine without a sound device
// still runs the game.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player at volume in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(volume, 1)),
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.music = nil
	p.initialized = false
}

// Jump plays a short rising chirp.
func (p *Player) Jump() {
	p.add(newSweep(sampleRate, 320, 720, 120*time.Millisecond, 0.35, true))
}

// Pickup plays a two-note blip.
func (p *Player) Pickup() {
	p.add(beep.Seq(
		newSweep(sampleRate, 880, 880, 60*time.Millisecond, 0.3, false),
		newSweep(sampleRate, 1320, 1320, 90*time.Millisecond, 0.3, false),
	))
}

// MusicStart restarts the chapter music from the top.
func (p *Player) MusicStart() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	ctrl := &beep.Ctrl{Streamer: p.withVolume(newBassLine(sampleRate))}

	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music.Streamer = nil
	}
	p.music = ctrl
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(p.withVolume(s))
	speaker.Unlock()
}

func (p *Player) withVolume(s beep.Streamer) beep.Streamer {
	if p.volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(p.volume)}
}
