package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a finite tone gliding linearly from one frequency to another,
// shaped with a short attack and an exponential tail.
type sweep struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	square    bool
	total     int
	pos       int
	phase     float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration, amplitude float64, square bool) *sweep {
	return &sweep{
		sr:        sr,
		from:      from,
		to:        to,
		amplitude: amplitude,
		square:    square,
		total:     sr.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		var v float64
		if s.square {
			if s.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		} else {
			v = math.Sin(2 * math.Pi * s.phase)
		}

		attack := math.Min(float64(s.pos)/float64(s.sr.N(5*time.Millisecond)+1), 1)
		v *= s.amplitude * attack * math.Exp(-3*progress)

		samples[i][0] = v
		samples[i][1] = v

		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// bassLine is the endless chapter music: a four-note arpeggio over a soft
// kick on every beat.
type bassLine struct {
	sr    beep.SampleRate
	beat  int
	pos   int
	phase float64
}

var bassNotes = []float64{110, 130.81, 164.81, 130.81}

func newBassLine(sr beep.SampleRate) *bassLine {
	return &bassLine{sr: sr, beat: sr.N(300 * time.Millisecond)}
}

func (b *bassLine) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := b.sr.N(60 * time.Millisecond)
	for i := range samples {
		beatPos := b.pos % b.beat
		note := bassNotes[(b.pos/b.beat)%len(bassNotes)]

		v := 0.12 * math.Sin(2*math.Pi*b.phase)
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			t := float64(beatPos) / float64(b.sr)
			v += 0.25 * env * math.Sin(2*math.Pi*55*(1+env)*t)
		}

		samples[i][0] = v
		samples[i][1] = v

		b.phase += note / float64(b.sr)
		b.phase -= math.Floor(b.phase)
		b.pos++
	}
	return len(samples), true
}

func (b *bassLine) Err() error { return nil }
