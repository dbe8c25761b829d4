// Package geometry holds pure canvas math helpers used when finalizing
// element drags and resizes.
package geometry

import "math"

// Snap rounds value to the nearest multiple of gridSize. Halfway values
// round away from zero. A grid size of zero or less disables snapping and
// returns value unchanged.
func Snap(value, gridSize float64) float64 {
	if gridSize <= 0 {
		return value
	}
	return math.Round(value/gridSize) * gridSize
}

// SnapPosition snaps both coordinates of a canvas position independently
func SnapPosition(x, y, gridSize float64) (float64, float64) {
	return Snap(x, gridSize), Snap(y, gridSize)
}
