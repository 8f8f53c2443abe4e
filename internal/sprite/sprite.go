// Package sprite holds the fixed 7x7 character bitmaps drawn onto the heatmap.
//
// A cell value of 1 is part of the character, 0 is background. Sprites are
// returned by value so callers can never alter the shared definitions.
package sprite

// Size is the width and height of every sprite.
const Size = 7

// Sprite is a square binary bitmap, indexed [row][col].
type Sprite [Size][Size]int

var ghost = Sprite{
	{0, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1},
	{1, 1, 0, 1, 0, 1, 1}, // eyes
	{1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 1, 0, 1, 0, 1}, // skirt
}

var pacManLeft = Sprite{
	{0, 1, 1, 1, 1, 1, 0},
	{1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 1},
	{0, 0, 0, 1, 1, 1, 1}, // mouth, open to the left
	{0, 1, 1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 1},
	{0, 1, 1, 1, 1, 1, 0},
}

// Ghost returns the fleeing character. Its eyes are background cells on row 2.
func Ghost() Sprite {
	return ghost
}

// PacManLeft returns the chasing character with its mouth facing left.
func PacManLeft() Sprite {
	return pacManLeft
}

// PacManRight returns the chasing character with its mouth facing right.
func PacManRight() Sprite {
	return pacManLeft.Mirror()
}

// Mirror flips the sprite horizontally.
func (s Sprite) Mirror() Sprite {
	var out Sprite
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r][Size-1-c] = s[r][c]
		}
	}
	return out
}

// Ones counts foreground cells.
func (s Sprite) Ones() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if s[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
