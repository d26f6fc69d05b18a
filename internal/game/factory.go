package game

import "math/rand"

// Factory constructs notes at the top of the playfield. The random
// source is injected so a fixed seed gives a reproducible sequence.
type Factory struct {
	rng *rand.Rand
}

func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

func (f *Factory) Create(kind Kind, lane int) *Note {
	return &Note{
		Lane:  lane,
		X:     LaneColumn(lane),
		Y:     SpawnY,
		Kind:  kind,
		speed: kind.Speed(),
	}
}

// CreateRandom draws the kind from the fixed 70/20/10 distribution,
// partitioning a single uniform draw at 0.70 and 0.90.
func (f *Factory) CreateRandom(lane int) *Note {
	r := f.rng.Float64()
	kind := Normal
	switch {
	case r < 0.70:
		kind = Normal
	case r < 0.90:
		kind = Hold
	default:
		kind = Special
	}
	return f.Create(kind, lane)
}

func (f *Factory) RandomLane() int {
	return f.rng.Intn(NLanes)
}
