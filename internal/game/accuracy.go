package game

type Accuracy uint8

const (
	Perfect Accuracy = iota
	Good
	Miss
)

const (
	PerfectDistance = 15.0
	GoodDistance    = 30.0

	// The attempt radii are independent of the classification thresholds
	// above. A press outside PressDistance is ignored entirely; a press
	// inside it is classified, even if that classification is a Miss.
	PressDistance = 40.0
	HoldDistance  = 30.0
)

var accuracyNames = [...]string{"PERFECT", "GOOD", "MISS"}

func (a Accuracy) String() string {
	return accuracyNames[a]
}

// Classify grades a timing distance against the fixed windows.
func Classify(distance float64) Accuracy {
	if distance <= PerfectDistance {
		return Perfect
	}
	if distance <= GoodDistance {
		return Good
	}
	return Miss
}
