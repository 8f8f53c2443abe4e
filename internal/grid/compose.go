package grid

import (
	"github.com/bashhack/gitpix/internal/sprite"
)

// Layout positions the scene on the grid.
type Layout struct {
	Fleeing    sprite.Sprite
	FleeingCol int

	TrailRow  int
	TrailFrom int
	TrailTo   int
	TrailStep int

	Chasing    sprite.Sprite
	ChasingCol int
}

// DefaultLayout is the ghost near the left edge, a dotted trail on the middle
// row, and Pac-Man near the right edge with its mouth facing the ghost.
func DefaultLayout() Layout {
	return Layout{
		Fleeing:    sprite.Ghost(),
		FleeingCol: 3,

		TrailRow:  3,
		TrailFrom: 11,
		TrailTo:   39,
		TrailStep: 2,

		Chasing:    sprite.PacManLeft(),
		ChasingCol: 41,
	}
}

// Compose draws the layout and returns the raw binary scene, before inversion:
// 1 marks a character pixel.
func Compose(l Layout) Grid {
	var g Grid
	g = Place(g, l.Fleeing, l.FleeingCol)
	g = Trail(g, l.TrailRow, l.TrailFrom, l.TrailTo, l.TrailStep)
	g = Place(g, l.Chasing, l.ChasingCol)
	return g
}

// Composite draws the layout and inverts it, so characters are 0 and the
// background is 1, ready for Shade.
func Composite(l Layout) Grid {
	return Invert(Compose(l))
}

// Build is Composite followed by Shade with weight w.
func Build(l Layout, w int) Grid {
	return Shade(Composite(l), w)
}
