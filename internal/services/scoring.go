package services

import "math"

const (
	basePoints         = 100
	smoothLandingBonus = 50
	smoothLandingLimit = 600 // ft/min, absolute
	pointsPerFullHour  = 10
)

// ComputeProvisionalPoints scores a submitted report. Base 100, a smooth
// landing bonus below 600 ft/min absolute, and 10 points per full hour
// flown. The result is advisory; an admin may override it at approval.
func ComputeProvisionalPoints(durationMinutes int, landingRate float64) int {
	points := basePoints
	if math.Abs(landingRate) < smoothLandingLimit {
		points += smoothLandingBonus
	}
	points += (durationMinutes / 60) * pointsPerFullHour
	return points
}
