package audio

import (
	"log"
	"time"

	"beatfall/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	toneDuration = 90 * time.Millisecond
	attackSec    = 0.005
	releaseSec   = 0.04
	gain         = 0.4
)

type toneKey struct {
	acc     game.Accuracy
	special bool
}

// DefaultPlayer plays a short synthesized tone per judgement. If the
// audio device cannot be opened the player goes silent and every Play
// is a no-op; a judgement is never lost to an audio failure.
type DefaultPlayer struct {
	silent bool
	tones  map[toneKey]*beep.Buffer
}

func NewDefaultPlayer(muted bool) *DefaultPlayer {
	p := &DefaultPlayer{silent: true}
	if muted {
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/60)); nil != err {
		log.Println("audio unavailable, continuing silent:", err)
		return p
	}

	p.silent = false
	p.tones = make(map[toneKey]*beep.Buffer, 6)
	for _, acc := range []game.Accuracy{game.Perfect, game.Good, game.Miss} {
		for _, special := range []bool{false, true} {
			p.tones[toneKey{acc, special}] = bufferize(synthesize(acc, special))
		}
	}
	return p
}

func (p *DefaultPlayer) Play(acc game.Accuracy, special bool) {
	if p.silent {
		return
	}
	buf := p.tones[toneKey{acc, special}]
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// synthesize renders the judgement tone: bright sines for connects, a
// low square buzz for a miss, an added octave sparkle for specials.
func synthesize(acc game.Accuracy, special bool) []float64 {
	samples := sampleRate.N(toneDuration)

	wave := waveSine
	freq := 660.0
	switch acc {
	case game.Perfect:
		freq = 880.0
	case game.Miss:
		wave = waveSquare
		freq = 220.0
	}

	buf := oscillator(wave, freq, samples)
	if special {
		mix(buf, oscillator(waveSine, freq*2, samples), 0.5)
	}
	applyEnvelope(buf, attackSec, releaseSec)
	for i := range buf {
		buf[i] *= gain
	}
	return buf
}

func bufferize(samples []float64) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(&toneStreamer{samples: samples})
	return buf
}
