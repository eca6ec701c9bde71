package game

import "math"

// Number of guaranteed full turns before the wheel settles, plus up to
// two more at random so repeated spins don't all look the same.
const (
	minFullTurns   = 5
	extraTurnRange = 3
)

// PlanRotation computes the absolute rotation (in degrees) the wheel
// must animate to so that the fixed pointer at the top ends centered on
// segment index. current is the wheel's present absolute rotation; the
// result is always strictly greater, so consecutive spins accumulate
// rotation and the animation always runs forward.
//
// Segment 0 starts at the top and segments run clockwise, so landing
// segment i under the pointer means orienting the wheel at
// (360 - center(i)) mod 360.
func PlanRotation(index, segmentCount int, current float64, rng Rand) float64 {
	slice := 360.0 / float64(segmentCount)
	target := float64(index)*slice + slice/2

	baseTarget := math.Mod(360-target, 360)

	distance := baseTarget - math.Mod(current, 360)
	if distance < 0 {
		distance += 360
	}

	turns := minFullTurns + rng.IntN(extraTurnRange)
	return current + distance + float64(turns)*360
}
