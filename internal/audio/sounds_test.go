package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion, up to limit samples, and returns the sample
// count and the loudest absolute value seen.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if math.IsNaN(v) {
					t.Fatalf("NaN sample at %d", total+i)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	return total, peak
}

func TestEffectLengths(t *testing.T) {
	sr := beep.SampleRate(8000)
	cases := []struct {
		name string
		s    beep.Streamer
		want int
	}{
		{"footstep", Footstep(sr, 1), sr.N(footstepLength)},
		{"select", Select(sr), sr.N(selectLength)},
		{"victory", Victory(sr), 3*sr.N(victoryNote) + sr.N(3*victoryNote)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, peak := drain(t, c.s, 10*int(sr))
			if n != c.want {
				t.Fatalf("length = %d samples, want %d", n, c.want)
			}
			if peak == 0 || peak > 1 {
				t.Fatalf("peak = %v, want (0, 1]", peak)
			}
		})
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	sr := beep.SampleRate(8000)
	buf := make([][2]float64, 4)
	n, _ := Select(sr).Stream(buf)
	if n == 0 || buf[0][0] != 0 {
		t.Fatalf("first sample = %v, want 0", buf[0][0])
	}
}

func TestFootstepSeeded(t *testing.T) {
	sr := beep.SampleRate(8000)
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	Footstep(sr, 7).Stream(a)
	Footstep(sr, 7).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs for the same seed", i)
		}
	}
}

func TestAmbienceIsEndless(t *testing.T) {
	sr := beep.SampleRate(8000)
	n, peak := drain(t, Ambience(sr, "maps/the_cave.map"), int(sr))
	if n < int(sr) {
		t.Fatalf("ambience ended after %d samples", n)
	}
	if peak == 0 || peak > 0.2 {
		t.Fatalf("ambience peak = %v", peak)
	}
}

func TestFootstepsDoNotOverlap(t *testing.T) {
	p := NewPlayer(false)
	first := p.nextFootstep()
	if first == nil {
		t.Fatal("first footstep refused")
	}
	if p.nextFootstep() != nil {
		t.Fatal("second footstep started while the first is playing")
	}
	drain(t, first, int(time.Second/time.Millisecond)*100)
	if p.nextFootstep() == nil {
		t.Fatal("footstep refused after the previous one finished")
	}
}

func TestUninitialisedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(true)
	if err := p.Init(); err != nil {
		t.Fatalf("muted Init: %v", err)
	}
	p.Footstep()
	p.Select()
	p.Victory()
	p.StartAmbience("banana_land")
	p.StopAmbience()
	p.Close()
	if p.active() {
		t.Fatal("muted player reports active")
	}
}
