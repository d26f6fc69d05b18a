package theme

import (
	"fmt"
	"image/color"

	"beatfall/internal/game"
)

type DefaultTheme struct{}

const (
	noteSym = "⬤"
	holdSym = "▮"
	barSym  = "-"
)

var (
	noteColors = map[game.Kind]color.RGBA{
		game.Normal:  {R: 0, G: 0, B: 255},   // blue
		game.Hold:    {R: 0, G: 255, B: 0},   // green
		game.Special: {R: 255, G: 0, B: 255}, // purple
	}
	glowColor = color.RGBA{R: 255, G: 165, B: 0} // orange

	accuracyColors = [...]color.RGBA{
		{R: 0, G: 255, B: 0},   // Perfect
		{R: 255, G: 255, B: 0}, // Good
		{R: 255, G: 0, B: 0},   // Miss
	}
)

func colored(c color.RGBA, sym string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderNote(n *game.Note) string {
	sym := noteSym
	if n.Kind == game.Hold {
		sym = holdSym
	}
	c := noteColors[n.Kind]
	// The glow alternates the special note between its color and the
	// highlight every few frames.
	if n.Kind == game.Special && (n.Glow/8)%2 == 1 {
		c = glowColor
	}
	return colored(c, sym)
}

func (t *DefaultTheme) RenderHitField(lane int) string {
	return barSym
}

func (t *DefaultTheme) AccuracyLabel(a game.Accuracy) string {
	return colored(accuracyColors[a], a.String())
}

func (t *DefaultTheme) AccuracyColor(a game.Accuracy) color.RGBA {
	return accuracyColors[a]
}
