// Package audio synthesises the game's sound effects with beep and plays
// them through a single mixer on the system speaker.
package audio

import (
	"math"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"gridcaster/pkg/rng"
)

// SampleRate is the rate every sound is generated at.
const SampleRate = beep.SampleRate(44100)

const (
	footstepLength = 140 * time.Millisecond
	selectLength   = 90 * time.Millisecond
	victoryNote    = 130 * time.Millisecond
)

// Footstep is a short burst of low-passed noise.
func Footstep(sr beep.SampleRate, seed int64) beep.Streamer {
	n := &noise{r: rng.New(seed), smooth: 0.08}
	s := shape(beep.Take(sr.N(footstepLength), n), sr, footstepLength, 5*time.Millisecond, 110*time.Millisecond)
	return volume(s, 0.6)
}

// Select is the blip played when a level is chosen.
func Select(sr beep.SampleRate) beep.Streamer {
	return volume(tone(sr, 880, selectLength), 0.5)
}

// Victory is a rising C major arpeggio.
func Victory(sr beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		d := victoryNote
		if i == len(notes)-1 {
			d *= 3
		}
		parts = append(parts, tone(sr, f, d))
	}
	return volume(beep.Seq(parts...), 0.6)
}

// ambienceRoots picks the drone pitch per level, matched by substring.
var ambienceRoots = []struct {
	match string
	root  float64
}{
	{"banana_land", 110},
	{"deep_jungle", 98},
	{"the_cave", 55},
	{"taylors_special", 130.81},
	{"monkey_temple", 73.42},
}

// Ambience is an endless quiet drone whose pitch depends on the level.
func Ambience(sr beep.SampleRate, level string) beep.Streamer {
	root := 82.41
	for _, a := range ambienceRoots {
		if strings.Contains(level, a.match) {
			root = a.root
			break
		}
	}
	low, err := generators.SineTone(sr, root)
	if err != nil {
		return beep.Silence(-1)
	}
	fifth, err := generators.SineTone(sr, root*1.5)
	if err != nil {
		return beep.Silence(-1)
	}
	return volume(beep.Mix(volume(low, 0.7), volume(fifth, 0.3)), 0.12)
}

// tone is a sine note of length d with a short attack and release.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return shape(beep.Take(sr.N(d), sine), sr, d, 5*time.Millisecond, d/2)
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// noise is white noise through a one-pole low-pass filter.
type noise struct {
	r      *rng.RNG
	smooth float64
	last   float64
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		n.last += n.smooth * (n.r.Float64()*2 - 1 - n.last)
		samples[i][0] = n.last
		samples[i][1] = n.last
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// envelope ramps the start and end of a finite streamer to avoid clicks.
type envelope struct {
	s                        beep.Streamer
	pos, total, att, release int
}

func shape(s beep.Streamer, sr beep.SampleRate, total, attack, release time.Duration) beep.Streamer {
	return &envelope{s: s, total: sr.N(total), att: sr.N(attack), release: sr.N(release)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.att > 0 && e.pos < e.att {
			gain = float64(e.pos) / float64(e.att)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Min(gain, math.Max(float64(left)/float64(e.release), 0))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }
