package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue is one short synthesized sound.
type Cue int

const (
	CueShot Cue = iota
	CueKill
	CueLeak
	CueGameOver
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf, so 0 means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	attack := 5 * time.Millisecond
	release := d / 2
	return newEnvelope(newOscillator(freq, d, wave, rate), d, attack, release, rate)
}

// CueDuration returns how long c plays.
func CueDuration(c Cue) time.Duration {
	switch c {
	case CueShot:
		return 40 * time.Millisecond
	case CueKill:
		return 120 * time.Millisecond
	case CueLeak:
		return 200 * time.Millisecond
	case CueGameOver:
		return 600 * time.Millisecond
	}
	return 0
}

// NewCue builds the streamer for c at volume vol (0..1).
func NewCue(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	d := CueDuration(c)
	var s beep.Streamer
	switch c {
	case CueShot:
		s = tone(660, d, WaveSquare, rate)
	case CueKill:
		s = beep.Mix(
			newVolume(tone(880, d, WaveSine, rate), 0.7),
			newVolume(tone(1760, d, WaveSine, rate), 0.3),
		)
	case CueLeak:
		s = tone(110, d, WaveSaw, rate)
	case CueGameOver:
		step := d / 3
		s = beep.Seq(
			tone(440, step, WaveSine, rate),
			tone(330, step, WaveSine, rate),
			tone(220, step, WaveSine, rate),
		)
	default:
		s = beep.Silence(0)
	}
	return newVolume(s, vol)
}
