package input

import "time"

type Input interface {
	// Poll reports the lanes with a fresh press since the last call and
	// the lanes currently held down. quit is set when the player asked
	// to leave.
	Poll(now time.Duration) (pressed, held []int, quit bool)
	Close()
}
