package audio

import (
	"testing"

	"beatfall/internal/game"
)

func TestSynthesizeLength(t *testing.T) {
	expected := sampleRate.N(toneDuration)
	for _, acc := range []game.Accuracy{game.Perfect, game.Good, game.Miss} {
		for _, special := range []bool{false, true} {
			buf := synthesize(acc, special)
			if len(buf) != expected {
				t.Log("accuracy", acc, "special", special)
				t.Log("samples ", len(buf))
				t.Log("expected", expected)
				t.Fail()
			}
		}
	}
}

func TestEnvelope(t *testing.T) {
	buf := make([]float64, sampleRate.N(toneDuration))
	for i := range buf {
		buf[i] = 1
	}
	applyEnvelope(buf, attackSec, releaseSec)

	if buf[0] != 0 {
		t.Log("attack start", buf[0])
		t.Fail()
	}
	if mid := buf[len(buf)/2]; mid != 1 {
		t.Log("sustain", mid)
		t.Fail()
	}
	if last := buf[len(buf)-1]; last >= buf[len(buf)/2] {
		t.Log("release end", last)
		t.Fail()
	}
}

func TestOscillatorSquare(t *testing.T) {
	for _, s := range oscillator(waveSquare, 220, 512) {
		if s != 1 && s != -1 {
			t.Log("sample", s)
			t.Fail()
			return
		}
	}
}

func TestOscillatorSineBounded(t *testing.T) {
	for _, s := range oscillator(waveSine, 880, 512) {
		if s < -1 || s > 1 {
			t.Log("sample", s)
			t.Fail()
			return
		}
	}
}

func TestToneStreamer(t *testing.T) {
	ts := &toneStreamer{samples: []float64{0.5, -0.5, 0.25}}
	out := make([][2]float64, 2)

	n, ok := ts.Stream(out)
	if n != 2 || !ok || out[0][0] != 0.5 || out[0][1] != 0.5 {
		t.Log("n", n, "ok", ok, "out", out)
		t.Fail()
	}

	n, ok = ts.Stream(out)
	if n != 1 || !ok {
		t.Log("n", n, "ok", ok)
		t.Fail()
	}

	n, ok = ts.Stream(out)
	if n != 0 || ok {
		t.Log("n", n, "ok", ok)
		t.Fail()
	}
}

func TestSilentPlayerIsNoOp(t *testing.T) {
	p := NewDefaultPlayer(true)
	// Must not panic or touch the speaker
	p.Play(game.Perfect, true)
	p.Play(game.Miss, false)
}
