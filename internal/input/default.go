package input

import (
	"fmt"
	"log"
	"math"
	"time"

	"beatfall/internal/config"
	"beatfall/internal/game"
	"github.com/eiannone/keyboard"
)

// HoldWindow is how long a lane counts as held after its last key
// event. Terminal input has no key-up events, so holding is inferred
// from the keyboard auto-repeat stream.
const HoldWindow = 150 * time.Millisecond

type DefaultInput struct {
	events <-chan keyboard.KeyEvent
	last   [game.NLanes]time.Duration
}

func NewDefaultInput() (*DefaultInput, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	in := &DefaultInput{events: events}
	for i := range in.last {
		in.last[i] = math.MinInt64 / 2
	}
	return in, nil
}

func (in *DefaultInput) Poll(now time.Duration) (pressed, held []int, quit bool) {
	// get the key inputs that occured so far
	for i := 0; i < len(in.events); i++ {
		key := <-in.events
		if key.Key == keyboard.KeyEsc {
			return nil, nil, true
		}
		lane := config.KeyLane(key.Rune)
		if lane < 0 || lane >= game.NLanes {
			continue
		}
		pressed = append(pressed, lane)
		in.press(lane, now)
	}
	return pressed, in.heldLanes(now), false
}

func (in *DefaultInput) Close() {
	if err := keyboard.Close(); nil != err {
		log.Println("unable to close keyboard:", err)
	}
}

func (in *DefaultInput) press(lane int, now time.Duration) {
	in.last[lane] = now
}

func (in *DefaultInput) heldLanes(now time.Duration) []int {
	var held []int
	for lane := range in.last {
		if now-in.last[lane] <= HoldWindow {
			held = append(held, lane)
		}
	}
	return held
}
