package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Note frequencies in Hz.
const (
	noteC6 = 1046.50
	noteE6 = 1318.51
	noteG6 = 1567.98
	noteC7 = 2093.00
)

// fade applies a linear release over the last part of a fixed-length
// streamer so notes end without clicks.
type fade struct {
	streamer beep.Streamer
	total    int
	release  int
	pos      int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		left := f.total - f.pos
		if left < f.release {
			g := float64(left) / float64(f.release)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// note returns a sine tone of the given length at volume vol (0..1).
func note(freq float64, d time.Duration, vol float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	total := sampleRate.N(d)
	shaped := &fade{
		streamer: beep.Take(total, sine),
		total:    total,
		release:  total / 2,
	}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: math.Log2(vol)}
}

// pickupTone is a two-partial bell, a fifth apart.
func pickupTone() beep.Streamer {
	return beep.Mix(
		note(noteC6, 120*time.Millisecond, 0.25),
		note(noteG6, 120*time.Millisecond, 0.1),
	)
}

// completeTone is an ascending C major arpeggio.
func completeTone() beep.Streamer {
	return beep.Seq(
		note(noteC6, 90*time.Millisecond, 0.25),
		note(noteE6, 90*time.Millisecond, 0.25),
		note(noteG6, 90*time.Millisecond, 0.25),
		note(noteC7, 240*time.Millisecond, 0.25),
	)
}
