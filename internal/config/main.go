package config

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Seed        = kingpin.Flag("seed", "Note spawn seed, 0 for time-based").Default("0").Int64()
	Delay       = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod = kingpin.Flag("frame-period", "Render frame period").Default("16666us").Short('p').Duration()
	Length      = kingpin.Flag("length", "Session length, 0 for endless").Default("0s").Short('l').Duration()
	Mute        = kingpin.Flag("mute", "Disable audio output").Short('m').Bool()
	keys        = kingpin.Flag("keys", "Lane keys").Default("dfjk").Short('k').String()
)

func Keys() []rune {
	return []rune(*keys)
}

func KeyLane(r rune) int {
	for i, c := range Keys() {
		if r == c {
			return i
		}
	}
	return -1
}

// Parse is called once from main, before any flag value is read.
func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}
