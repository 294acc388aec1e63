// Package render draws a carved (and optionally solved) hexagonal maze.
// It is a read-only consumer of the grid: wall and visited flags are
// inspected, never mutated.
//
// Two back ends are provided:
//
//   - WritePostScript emits a two-page PostScript document to an io.Writer:
//     page one is the bare maze, page two overlays the solution path in blue.
//   - Rasterize paints the same line segments into an *image.RGBA, suitable
//     for PNG encoding or further composition.
//
// Solution inference
//
//	The solution overlay is derived purely from the grid: a blue segment is
//	drawn between the centers of two visited cells joined by an open passage,
//	with a higher-index rule so each segment is drawn once. This is correct
//	because a solved perfect maze carries visited marks on exactly one
//	start-to-end path; the renderer never needs the solver's internal order.
//
// Walls are drawn per cell. PostScript lists only the UpRight, DownRight,
// and Down walls plus the exterior, so no shared wall is stroked twice;
// the raster back end draws all six sides of every cell, since repainting
// a shared pixel is harmless.
//
// Complexity: O(rows·cols) emitted segments for either back end.
package render
