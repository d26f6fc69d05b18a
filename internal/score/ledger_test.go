package score

import (
	"testing"

	"beatfall/internal/game"
)

func TestRecordMissResetsCombo(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 5; i++ {
		l.Record(game.Perfect, 100)
	}
	before := l.Score()

	award := l.Record(game.Miss, 100)
	if award != 0 || l.Score() != before {
		t.Log("award", award)
		t.Log("score", l.Score(), "was", before)
		t.Fail()
	}
	if l.Combo() != 0 || l.MaxCombo() != 5 || l.Misses() != 1 {
		t.Log("combo    ", l.Combo())
		t.Log("max combo", l.MaxCombo())
		t.Log("misses   ", l.Misses())
		t.Fail()
	}
}

func TestComboBonusCap(t *testing.T) {
	l := NewLedger()
	awards := make([]int, 0, 25)
	for i := 0; i < 25; i++ {
		awards = append(awards, l.Record(game.Perfect, 100))
	}

	// combo 1 -> x1.5 x1.1, combo 3 -> x1.5 x1.3, capped at combo 20
	expected := map[int]int{0: 165, 2: 195, 18: 435, 19: 450, 20: 450, 24: 450}
	for i, want := range expected {
		if awards[i] != want {
			t.Log("hit     ", i)
			t.Log("award   ", awards[i])
			t.Log("expected", want)
			t.Fail()
		}
	}
	if l.Combo() != 25 || l.Perfects() != 25 {
		t.Log("combo   ", l.Combo())
		t.Log("perfects", l.Perfects())
		t.Fail()
	}
}

func TestGoodMultiplier(t *testing.T) {
	l := NewLedger()
	if award := l.Record(game.Good, 100); award != 110 {
		t.Log("award", award)
		t.Fail()
	}
}

func TestAccuracyPercentage(t *testing.T) {
	l := NewLedger()
	if p := l.AccuracyPercentage(); p != 0 {
		t.Log("no hits:", p)
		t.Fail()
	}

	l.Record(game.Perfect, 100)
	l.Record(game.Perfect, 100)
	l.Record(game.Perfect, 100)
	l.Record(game.Good, 100)
	l.Record(game.Miss, 0)
	if p := l.AccuracyPercentage(); p != 80.0 {
		t.Log("percentage", p)
		t.Fail()
	}
}

func TestMaxComboMonotonic(t *testing.T) {
	l := NewLedger()
	l.Record(game.Perfect, 100)
	l.Record(game.Perfect, 100)
	l.Record(game.Miss, 0)
	l.Record(game.Good, 100)
	if l.MaxCombo() != 2 || l.Combo() != 1 {
		t.Log("max combo", l.MaxCombo())
		t.Log("combo    ", l.Combo())
		t.Fail()
	}
}
