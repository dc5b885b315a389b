package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"
)

// drain читает streamer до конца и возвращает число сэмплов и пиковую амплитуду.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestEffectLengths(t *testing.T) {
	rate := beep.SampleRate(8000)
	kinds := []defs.SoundKind{defs.SoundShoot, defs.SoundExplosion, defs.SoundPowerUp, defs.SoundLevelUp, defs.SoundDebuff}
	for _, k := range kinds {
		t.Run(string(k), func(t *testing.T) {
			n, peak := drain(Effect(k, 1, rate))
			want := rate.N(Duration(k))
			if diff := n - want; diff < -4 || diff > 4 {
				t.Errorf("samples = %d, want about %d", n, want)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak = %v", peak)
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(Effect(defs.SoundExplosion, 0, beep.SampleRate(8000)))
	if peak != 0 {
		t.Errorf("peak = %v, want silence", peak)
	}
}

func TestUnknownEffect(t *testing.T) {
	if Effect("laser", 1, beep.SampleRate(8000)) != nil {
		t.Errorf("unknown sound produced a streamer")
	}
}

func TestPlayerWithoutDeviceIsSilent(t *testing.T) {
	p := NewPlayer(0.6)
	p.OnEvent(event.Event{Type: event.SoundRequested, Data: defs.SoundShoot})
	p.OnEvent(event.Event{Type: event.GameOver})
	if p.mixer.Len() != 0 {
		t.Errorf("uninitialized player queued sounds")
	}
	p.SetVolume(0.2)
	if p.Volume() != 0.2 {
		t.Errorf("volume = %v", p.Volume())
	}
	p.Close()
}
