package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	return total
}

func TestSweepLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := newSweep(rate, 320, 720, 100*time.Millisecond, 0.35, true)

	got := drain(t, s, 1<<20)
	if want := rate.N(100 * time.Millisecond); got != want {
		t.Errorf("sweep produced %d samples, expected %d", got, want)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}

	buf := make([][2]float64, 16)
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained sweep returned n=%d ok=%v", n, ok)
	}
}

func TestSineSweepStaysInRange(t *testing.T) {
	s := newSweep(sampleRate, 880, 1320, 50*time.Millisecond, 0.3, false)
	drain(t, s, 1<<20)
}

func TestBassLineIsEndless(t *testing.T) {
	b := newBassLine(sampleRate)
	limit := sampleRate.N(2 * time.Second)
	if got := drain(t, b, limit); got < limit {
		t.Errorf("bass line stopped after %d samples", got)
	}
}

func TestPlayerIsSilentUntilInitialized(t *testing.T) {
	p := NewPlayer(0.5, nil)
	p.Jump()
	p.Pickup()
	p.MusicStart()
	p.Close()
	if p.music != nil {
		t.Error("music started without a speaker")
	}
}

func TestPlayerClampsVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.25, 0.25},
		{3, 1},
	}
	for _, tc := range tests {
		if got := NewPlayer(tc.in, nil).volume; got != tc.want {
			t.Errorf("NewPlayer(%v).volume = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
