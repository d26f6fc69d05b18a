package game

type Note struct {
	Lane int     // The playfield column, 0..3
	X    float64 // Fixed lane slot
	Y    float64 // Top edge, descends every frame
	Kind Kind

	// This is state
	Hit        bool // Set at most once, when the note is consumed
	BeingHeld  bool // Hold only, retoggled every frame by the evaluator
	HoldFrames int  // Hold only, accrued while held; nothing reads it yet
	Glow       int  // Special only, cosmetic animation counter

	speed float64
}

// Advance moves the note one frame down the playfield. Position only
// ever increases.
func (n *Note) Advance() {
	n.Y += n.speed
	if n.Kind == Hold && n.BeingHeld {
		n.HoldFrames++
	}
	if n.Kind == Special {
		n.Glow++
	}
}

func (n *Note) Speed() float64 {
	return n.speed
}

// Center is the effective vertical center of the hit box.
func (n *Note) Center() float64 {
	return n.Y + n.Kind.Height()/2
}

// DistanceTo returns the absolute offset between the note's center and
// the target hit line.
func (n *Note) DistanceTo(targetY float64) float64 {
	d := n.Center() - targetY
	if d < 0 {
		return -d
	}
	return d
}

func (n *Note) OffScreen(screenHeight float64) bool {
	return n.Y > screenHeight
}
