// Package audio plays the short tone that announces a new ripple.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const DefaultSampleRate = beep.SampleRate(44100)

// Beeper plays sine tones on the default output device.
// It is safe to call Play before Initialize or after Close: nothing is played.
type Beeper struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	initialized bool
}

func NewBeeper(sampleRate beep.SampleRate) *Beeper {
	return &Beeper{sampleRate: sampleRate}
}

// Initialize opens the speaker with a 100ms buffer.
func (b *Beeper) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.sampleRate, b.sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	b.initialized = true
	return nil
}

// Play starts a tone of freqHz lasting d and returns immediately.
func (b *Beeper) Play(freqHz float64, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	s, err := Tone(b.sampleRate, freqHz, d)
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}

// Tone is a sine wave of freqHz cut to d.
func Tone(sr beep.SampleRate, freqHz float64, d time.Duration) (beep.Streamer, error) {
	if freqHz <= 0 || freqHz >= float64(sr)/2 || d <= 0 {
		return nil, fmt.Errorf("invalid tone %gHz for %s at %dHz", freqHz, d, int(sr))
	}
	sine, err := generators.SineTone(sr, freqHz)
	if err != nil {
		return nil, fmt.Errorf("failed to create sine tone: %w", err)
	}
	return beep.Take(sr.N(d), sine), nil
}

// Silent drops every tone. Used when audio is disabled or no device is available.
type Silent struct{}

func (Silent) Play(float64, time.Duration) {}
