package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"go-space-shooter/internal/defs"
)

// WaveType - форма волны осциллятора.
type WaveType int

const (
	WaveSquare WaveType = iota
	WaveSaw
)

// Ramp - закон изменения частоты и громкости во времени.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExp
)

// tone - осциллятор с изменением частоты и усиления от начала к концу.
type tone struct {
	wave     WaveType
	from, to float64 // частота, Гц
	gainFrom float64
	gainTo   float64
	freqRamp Ramp
	gainRamp Ramp
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
}

// NewTone создаёт конечный streamer длительностью duration.
func NewTone(wave WaveType, from, to float64, freqRamp Ramp, gainFrom, gainTo float64, gainRamp Ramp,
	duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:     wave,
		from:     from,
		to:       to,
		gainFrom: gainFrom,
		gainTo:   gainTo,
		freqRamp: freqRamp,
		gainRamp: gainRamp,
		rate:     rate,
		total:    rate.N(duration),
	}
}

func ramp(kind Ramp, from, to, t float64) float64 {
	if kind == RampExp && from > 0 && to > 0 {
		return from * math.Pow(to/from, t)
	}
	return from + (to-from)*t
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		t := float64(o.position) / float64(o.total)

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		}
		val *= ramp(o.gainRamp, o.gainFrom, o.gainTo, t)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += ramp(o.freqRamp, o.from, o.to, t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// newVolume: log2(0) = -Inf, поэтому нулевая громкость - тишина
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// arpeggio - последовательность коротких нот с затуханием каждой.
func arpeggio(freqs []float64, note time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, NewTone(WaveSquare, f, f, RampLinear, gain, 0.01, RampExp, note, rate))
	}
	return beep.Seq(notes...)
}

// Effect собирает звук для события. Для неизвестного вида возвращает nil.
func Effect(kind defs.SoundKind, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case defs.SoundShoot:
		s = NewTone(WaveSquare, 600, 150, RampExp, 0.15, 0.01, RampExp, 100*time.Millisecond, rate)
	case defs.SoundExplosion:
		s = NewTone(WaveSaw, 120, 20, RampLinear, 0.3, 0.01, RampLinear, 400*time.Millisecond, rate)
	case defs.SoundPowerUp:
		s = arpeggio([]float64{440, 554, 659}, 50*time.Millisecond, 0.2, rate)
	case defs.SoundLevelUp:
		s = arpeggio([]float64{523, 659, 784, 1046}, 100*time.Millisecond, 0.25, rate)
	case defs.SoundDebuff:
		s = NewTone(WaveSquare, 200, 50, RampLinear, 0.2, 0.01, RampLinear, 200*time.Millisecond, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// Duration - длина эффекта, нужна тестам и ограничению наложений.
func Duration(kind defs.SoundKind) time.Duration {
	switch kind {
	case defs.SoundShoot:
		return 100 * time.Millisecond
	case defs.SoundExplosion:
		return 400 * time.Millisecond
	case defs.SoundPowerUp:
		return 150 * time.Millisecond
	case defs.SoundLevelUp:
		return 400 * time.Millisecond
	case defs.SoundDebuff:
		return 200 * time.Millisecond
	}
	return 0
}
