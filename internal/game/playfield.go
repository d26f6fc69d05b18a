package game

import "time"

const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0
	NLanes       = 4

	HitLineY    = 520.0
	LaneSpacing = 100.0

	// SpawnY keeps even the tallest kind fully above the visible area.
	SpawnY = -80.0

	SpawnInterval = 800 * time.Millisecond
)

// LaneColumn maps a lane index to its fixed horizontal slot, with the
// four lanes centered on the playfield.
func LaneColumn(lane int) float64 {
	return ScreenWidth/2 + float64(2*lane-3)*LaneSpacing/2
}
