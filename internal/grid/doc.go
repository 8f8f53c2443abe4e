// Package grid composes the heatmap scene and converts it to commit weights.
//
// The pipeline is a chain of pure functions over the Grid value type:
//
//	g := grid.Compose(grid.DefaultLayout()) // 1 = character pixel
//	g = grid.Invert(g)                      // 1 = background pixel
//	g = grid.Shade(g, grid.DefaultWeight)   // background = W commits
//
// Build runs all three. After shading every cell is either 0 (a character
// pixel, left empty) or W (background, filled with the darkest shade).
package grid
