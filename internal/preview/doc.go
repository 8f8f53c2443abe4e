// Package preview renders a shaded heatmap grid as text.
//
// The output shows one glyph per cell ("#" for a filled background cell, "."
// for an empty character cell) under a two-line column ruler, weekday labels on
// Monday, Wednesday and Friday, and a summary with the calendar range and the
// number of commits a commit run would create. Rendering has no side effects
// beyond the write, so rendering the same grid twice on the same day produces
// identical output.
package preview
