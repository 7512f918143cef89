package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/lucky-slots/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
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

// envelope applies linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release shape over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume is mapped to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note renders one enveloped sine note, using the beep tone generator when it accepts freq
func note(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	var src beep.Streamer
	if tone, err := generators.SineTone(rate, freq); err == nil {
		src = beep.Take(rate.N(duration), tone)
	} else {
		src = NewOscillator(freq, duration, WaveSine, rate)
	}
	return NewEnvelope(src, duration, 5*time.Millisecond, duration/2, rate)
}

// reelTicker is an endless train of short clicks while the reels turn
type reelTicker struct {
	rate     beep.SampleRate
	period   int
	click    int
	position int
}

// NewReelTicker creates the looping spin sound
func NewReelTicker(rate beep.SampleRate) beep.Streamer {
	return &reelTicker{
		rate:   rate,
		period: rate.N(constants.ReelTickInterval),
		click:  rate.N(8 * time.Millisecond),
	}
}

func (r *reelTicker) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		pos := r.position % r.period
		val := 0.0
		if pos < r.click {
			t := float64(pos) / float64(r.rate)
			decay := 1.0 - float64(pos)/float64(r.click)
			val = 0.25 * decay * math.Sin(2*math.Pi*constants.ReelTickFrequency*t)
		}
		samples[i][0] = val
		samples[i][1] = val
		r.position++
	}
	return len(samples), true
}

func (r *reelTicker) Err() error { return nil }

// sweep is a falling tone used for game over
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	duration int
	position int
}

func newSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{rate: rate, from: from, to: to, duration: rate.N(duration)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		val := (1 - progress) * math.Sin(2*math.Pi*s.phase)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// CreateDeniedSound is a short harsh buzz for a rejected spin
func CreateDeniedSound(rate beep.SampleRate) beep.Streamer {
	d := constants.DeniedSoundDuration
	osc := NewOscillator(constants.DeniedFrequency, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, 40*time.Millisecond, rate), 0.3)
}

// CreateWinSound is a two-note rising chime
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	d := constants.WinNoteDuration
	return newVolume(beep.Seq(
		note(1046.50, d, rate), // C6
		note(1318.51, d, rate), // E6
	), 0.35)
}

// CreateJackpotSound is a major arpeggio ending on a held octave
func CreateJackpotSound(rate beep.SampleRate) beep.Streamer {
	d := constants.JackpotNoteDuration
	return newVolume(beep.Seq(
		note(523.25, d, rate),  // C5
		note(659.25, d, rate),  // E5
		note(783.99, d, rate),  // G5
		note(1046.50, d, rate), // C6
		note(1046.50, 3*d, rate),
	), 0.4)
}

// CreateGameOverSound is a descending sweep
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(newSweep(constants.GameOverFrequency*3, constants.GameOverFrequency,
		constants.GameOverSoundDuration, rate), 0.35)
}
