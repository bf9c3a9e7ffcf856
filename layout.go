package spoke

import "math"

// ringCapacity is the number of items a ring holds at the base distance.
// Beyond it the ring widens per item instead of wrapping to a second ring.
const ringCapacity = 8

// StepAngle returns the angular position in degrees of item i among n items
// laid out evenly on the ring. Item 0 sits at -90° (straight up) and the
// order proceeds clockwise. The close item participates with its own index,
// so n always includes it. Panics if n < 1: a menu never lays out an empty
// ring.
func StepAngle(i, n int) float64 {
	if n < 1 {
		panic("spoke: ring layout requires at least one item")
	}
	step := 360.0 / float64(n)
	return -step - 90 + float64(i+1)*step
}

// PolarOffset converts an angle in degrees and a radial distance into a
// center-relative Cartesian offset, rounded to the nearest integer pixel on
// each axis.
func PolarOffset(angleDeg, distance float64) Vec2 {
	rad := angleDeg * math.Pi / 180
	return Vec2{
		X: math.Round(distance * math.Cos(rad)),
		Y: math.Round(distance * math.Sin(rad)),
	}
}

// RingDistance returns the shared radial distance for a ring of count items
// (close item included). The base distance is focusSize×1.2 so a focused item
// never overlaps the center. Each item beyond ringCapacity widens the ring by
// normalSize/3; the growth is linear to keep large menus from exploding
// outward. extra is an additive offset excluded from the capacity check,
// used for label placement.
func RingDistance(count int, extra, normalSize, focusSize float64) float64 {
	distance := focusSize*1.2 + extra
	if count <= ringCapacity {
		return distance
	}
	return distance + float64(count-ringCapacity)*normalSize/3
}
