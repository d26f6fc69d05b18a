package score

import (
	"time"

	"beatfall/internal/game"
)

// FeedbackFrames is how long a judgement stays on screen.
const FeedbackFrames = 60

// Sound receives one event per finalized judgement. Implementations
// must not fail in a way that reaches the caller; scoring has already
// happened by the time Play is invoked.
type Sound interface {
	Play(acc game.Accuracy, special bool)
}

// Feedback is the transient result of the most recent judgement.
type Feedback struct {
	Accuracy game.Accuracy
	Special  bool
	Award    int
	Seq      uint64

	frames int
}

// Evaluator owns the live note set and the ledger. All mutation of
// either happens here, once per frame, in a fixed order: spawn,
// advance and expire, then input resolution.
type Evaluator struct {
	factory *game.Factory
	ledger  *Ledger
	sound   Sound

	notes     []*game.Note
	lastSpawn time.Duration
	feedback  Feedback
}

func NewEvaluator(factory *game.Factory, ledger *Ledger, sound Sound) *Evaluator {
	return &Evaluator{
		factory: factory,
		ledger:  ledger,
		sound:   sound,
	}
}

// Notes is a snapshot for the renderer. Callers must not mutate it.
func (e *Evaluator) Notes() []*game.Note {
	return e.notes
}

func (e *Evaluator) Ledger() *Ledger {
	return e.ledger
}

// Feedback reports the most recent judgement while its display window
// is still open.
func (e *Evaluator) Feedback() (Feedback, bool) {
	return e.feedback, e.feedback.frames > 0
}

func (e *Evaluator) finalize(acc game.Accuracy, base int, special bool) {
	award := e.ledger.Record(acc, base)
	e.feedback = Feedback{
		Accuracy: acc,
		Special:  special,
		Award:    award,
		Seq:      e.feedback.Seq + 1,
		frames:   FeedbackFrames,
	}
	e.sound.Play(acc, special)
}

// Frame runs one step of the session. pressed holds the lanes with a
// fresh key press this frame, held the lanes currently held down.
func (e *Evaluator) Frame(elapsed time.Duration, pressed, held []int) {
	if e.feedback.frames > 0 {
		e.feedback.frames--
	}

	// Spawn gate
	if elapsed-e.lastSpawn >= game.SpawnInterval {
		e.notes = append(e.notes, e.factory.CreateRandom(e.factory.RandomLane()))
		e.lastSpawn = elapsed
	}

	// Advance and expire
	kept := e.notes[:0]
	for _, n := range e.notes {
		n.Advance()
		if n.OffScreen(game.ScreenHeight) {
			if !n.Hit {
				e.finalize(game.Miss, 0, n.Kind == game.Special)
			}
			continue
		}
		kept = append(kept, n)
	}
	e.notes = kept

	// Hold contact is re-established from scratch every frame.
	for _, n := range e.notes {
		n.BeingHeld = false
	}

	// At most one hit per lane per press, earliest spawned note wins.
	for _, lane := range pressed {
		for _, n := range e.notes {
			if n.Hit || n.Lane != lane || n.Kind == game.Hold {
				continue
			}
			d := n.DistanceTo(game.HitLineY)
			if d > game.PressDistance {
				continue
			}
			e.finalize(game.Classify(d), n.Kind.BaseScore(), n.Kind == game.Special)
			n.Hit = true
			break
		}
	}

	for _, lane := range held {
		for _, n := range e.notes {
			if n.Lane != lane || n.Kind != game.Hold {
				continue
			}
			d := n.DistanceTo(game.HitLineY)
			if d > game.HoldDistance {
				continue
			}
			n.BeingHeld = true
			// First contact registers the hit; holding on does not
			// score again.
			if !n.Hit {
				e.finalize(game.Classify(d), n.Kind.BaseScore(), false)
				n.Hit = true
			}
			break
		}
	}
}
