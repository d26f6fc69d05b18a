package score

import (
	"math"

	"beatfall/internal/game"
)

const (
	perfectMultiplier = 1.5
	goodMultiplier    = 1.0
	comboBonusStep    = 0.1
	comboBonusCap     = 2.0
)

// Ledger accumulates the session's hits. One instance per session,
// mutated only through Record.
type Ledger struct {
	score    int
	combo    int
	maxCombo int
	perfects int
	goods    int
	misses   int
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Record registers one finalized judgement and returns the awarded
// score. A Miss resets the combo and awards nothing.
func (l *Ledger) Record(acc game.Accuracy, base int) int {
	if acc == game.Miss {
		l.misses++
		l.combo = 0
		return 0
	}

	multiplier := goodMultiplier
	if acc == game.Perfect {
		l.perfects++
		multiplier = perfectMultiplier
	} else {
		l.goods++
	}

	l.combo++
	if l.combo > l.maxCombo {
		l.maxCombo = l.combo
	}

	bonus := float64(l.combo) * comboBonusStep
	if bonus > comboBonusCap {
		bonus = comboBonusCap
	}
	award := int(math.Floor(float64(base) * multiplier * (1 + bonus)))
	l.score += award
	return award
}

func (l *Ledger) Score() int    { return l.score }
func (l *Ledger) Combo() int    { return l.combo }
func (l *Ledger) MaxCombo() int { return l.maxCombo }
func (l *Ledger) Perfects() int { return l.perfects }
func (l *Ledger) Goods() int    { return l.goods }
func (l *Ledger) Misses() int   { return l.misses }

func (l *Ledger) TotalHits() int {
	return l.perfects + l.goods + l.misses
}

// AccuracyPercentage is the share of judgements that connected. Misses
// count toward the total.
func (l *Ledger) AccuracyPercentage() float64 {
	total := l.TotalHits()
	if total == 0 {
		return 0
	}
	return float64(l.perfects+l.goods) / float64(total) * 100
}
