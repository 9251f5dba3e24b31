//go:build audio

package term

import (
	"time"

	"sandfall/internal/sims/sand"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays short sine blips through the default audio device.
type Speaker struct {
	limit limiter
}

// NewSpeaker initialises the audio device.
func NewSpeaker() (Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return Silent{}, err
	}
	return &Speaker{}, nil
}

// Tick plays the cue for s unless one played recently.
func (sp *Speaker) Tick(s sand.Stats) {
	freq, ok := cue(s)
	if !ok || !sp.limit.allow(s.Tick) {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

// Close releases the audio device.
func (sp *Speaker) Close() { speaker.Close() }
