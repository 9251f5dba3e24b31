package term

import "sandfall/internal/sims/sand"

// Cues turns per-tick counters into sound.
type Cues interface {
	Tick(s sand.Stats)
	Close()
}

// Silent is the Cues implementation used when audio is unavailable.
type Silent struct{}

// Tick ignores the counters.
func (Silent) Tick(sand.Stats) {}

// Close is a no-op.
func (Silent) Close() {}

const (
	meltTone    = 196.0
	igniteTone  = 660.0
	quenchTone  = 330.0
	igniteBurst = 6
	quenchBurst = 4
	cueCooldown = 6
)

// cue picks the tone for a tick, if any. Melting wins over ignition bursts,
// which win over mass extinguishing.
func cue(s sand.Stats) (float64, bool) {
	switch {
	case s.Melts > 0:
		return meltTone, true
	case s.Ignitions >= igniteBurst:
		return igniteTone, true
	case s.Extinguished >= quenchBurst:
		return quenchTone, true
	}
	return 0, false
}

// limiter lets at most one cue through every cueCooldown ticks.
type limiter struct {
	last  uint64
	armed bool
}

func (l *limiter) allow(tick uint64) bool {
	if l.armed && tick-l.last < cueCooldown {
		return false
	}
	l.last = tick
	l.armed = true
	return true
}
