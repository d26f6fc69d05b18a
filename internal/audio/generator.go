package audio

import (
	"math"

	"github.com/faiface/beep"
)

const (
	waveSine = iota
	waveSquare
)

// oscillator generates raw mono waveform samples at unity gain.
func oscillator(wave int, freq float64, samples int) []float64 {
	buf := make([]float64, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies an attack/release envelope in place.
func applyEnvelope(buf []float64, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mix adds b into a in place, scaled.
func mix(a, b []float64, scale float64) {
	for i := range b {
		if i >= len(a) {
			break
		}
		a[i] += b[i] * scale
	}
}

// toneStreamer plays a mono sample buffer on both channels.
type toneStreamer struct {
	samples []float64
	pos     int
}

func (t *toneStreamer) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= len(t.samples) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= len(t.samples) {
			break
		}
		s := t.samples[t.pos]
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
		n++
	}
	return n, true
}

func (t *toneStreamer) Err() error {
	return nil
}

var _ beep.Streamer = (*toneStreamer)(nil)
