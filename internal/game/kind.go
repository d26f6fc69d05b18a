package game

type Kind uint8

const (
	Normal Kind = iota
	Hold
	Special
)

var (
	baseScores = [...]int{100, 200, 500}
	speeds     = [...]float64{5, 5, 5} // px per frame, fixed at construction
	heights    = [...]float64{40, 80, 40}
	names      = [...]string{"normal", "hold", "special"}
)

func (k Kind) BaseScore() int {
	return baseScores[k]
}

func (k Kind) Speed() float64 {
	return speeds[k]
}

// Height is the vertical extent of the hit box. Hold notes are taller.
func (k Kind) Height() float64 {
	return heights[k]
}

func (k Kind) String() string {
	return names[k]
}
