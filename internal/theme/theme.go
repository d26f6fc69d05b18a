package theme

import (
	"image/color"

	"beatfall/internal/game"
)

type Theme interface {
	RenderNote(n *game.Note) string
	RenderHitField(lane int) string
	AccuracyLabel(a game.Accuracy) string
	AccuracyColor(a game.Accuracy) color.RGBA
}
