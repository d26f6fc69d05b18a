package game

import (
	"math/rand"
	"testing"
)

func TestAdvance(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	for _, kind := range []Kind{Normal, Hold, Special} {
		n := f.Create(kind, 0)
		for i := 0; i < 7; i++ {
			n.Advance()
		}
		expected := SpawnY + 7*kind.Speed()
		if n.Y != expected {
			t.Log("kind    ", kind)
			t.Log("position", n.Y)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

var classifyTests = map[float64]Accuracy{
	0:       Perfect,
	10:      Perfect,
	15:      Perfect,
	15.0001: Good,
	20:      Good,
	30:      Good,
	30.0001: Miss,
	40:      Miss,
	1000:    Miss,
}

func TestClassify(t *testing.T) {
	for distance, expected := range classifyTests {
		out := Classify(distance)
		if out != expected {
			t.Log("distance", distance)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestDistanceTo(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	n := f.Create(Normal, 1)
	n.Y = 480
	// 40 px tall, center at 500
	if d := n.DistanceTo(HitLineY); d != 20 {
		t.Log("distance", d)
		t.Fail()
	}
	n.Y = 540
	if d := n.DistanceTo(HitLineY); d != 40 {
		t.Log("distance", d)
		t.Fail()
	}
}

func TestOffScreen(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	n := f.Create(Normal, 0)
	if n.OffScreen(ScreenHeight) {
		t.Fail()
	}
	n.Y = ScreenHeight
	if n.OffScreen(ScreenHeight) {
		t.Fail()
	}
	n.Y = ScreenHeight + 1
	if !n.OffScreen(ScreenHeight) {
		t.Fail()
	}
}

func TestHoldTimer(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	n := f.Create(Hold, 0)

	n.Advance()
	if n.HoldFrames != 0 {
		t.Log("accrued while not held:", n.HoldFrames)
		t.Fail()
	}

	n.BeingHeld = true
	n.Advance()
	n.Advance()
	n.Advance()
	if n.HoldFrames != 3 {
		t.Log("accrued", n.HoldFrames)
		t.Fail()
	}

	n.BeingHeld = false
	n.Advance()
	if n.HoldFrames != 3 {
		t.Log("accrued after release:", n.HoldFrames)
		t.Fail()
	}
}

func TestGlow(t *testing.T) {
	f := NewFactory(rand.New(rand.NewSource(1)))
	special := f.Create(Special, 0)
	normal := f.Create(Normal, 0)
	for i := 0; i < 5; i++ {
		special.Advance()
		normal.Advance()
	}
	if special.Glow != 5 || normal.Glow != 0 {
		t.Log("special", special.Glow)
		t.Log("normal ", normal.Glow)
		t.Fail()
	}
}
