package geom

import (
	"fmt"
	"math"
)

// arcEpsilon is the tolerance by which the chord may exceed the diameter, in which case the radius is enlarged to half the chord.
const arcEpsilon = 0.001

// ArcResult is the center parameterization of an arc, with the start and end angles in degrees.
type ArcResult struct {
	Center     Point
	StartAngle float64
	EndAngle   float64
}

func (r ArcResult) String() string {
	return fmt.Sprintf("center=%v start=%v° end=%v°", r.Center, ftos(r.StartAngle), ftos(r.EndAngle))
}

// ArcCenter converts an elliptical arc from the endpoint parameterization, as used in SVG paths, to its center and the angles of its endpoints.
// The ellipse is axis aligned with radii rx and ry, large selects the arc of at least 180 degrees and clockwise the direction of travel from start to end.
// It returns ErrInvalidArgument for non-positive radii and ErrInfeasible when start equals end or when the endpoints are too far apart for the radii.
func ArcCenter(start, end Point, rx, ry float64, large, clockwise bool) (ArcResult, error) {
	if !(0.0 < rx) || !(0.0 < ry) {
		return ArcResult{}, fmt.Errorf("%w: radii must be positive, got %v and %v", ErrInvalidArgument, rx, ry)
	}

	// scale to a unit circle and scale the center back afterwards
	start = Point{start.X / rx, start.Y / ry}
	end = Point{end.X / rx, end.Y / ry}
	arc, err := ArcCenterCircle(start, end, 1.0, large, clockwise)
	if err != nil {
		return ArcResult{}, err
	}
	arc.Center = Point{arc.Center.X * rx, arc.Center.Y * ry}
	return arc, nil
}

// ArcCenterCircle converts a circular arc with radius r from the endpoint parameterization to its center and the angles of its endpoints. See ArcCenter.
func ArcCenterCircle(start, end Point, r float64, large, clockwise bool) (ArcResult, error) {
	if !(0.0 < r) {
		return ArcResult{}, fmt.Errorf("%w: radius must be positive, got %v", ErrInvalidArgument, r)
	} else if start == end {
		return ArcResult{}, fmt.Errorf("%w: start and end points must differ, got %v", ErrInfeasible, start)
	}

	// There are at most two circles with radius r through the distinct points A (start) and B (end). Let C be the center
	// of one of them and D the midpoint of AB. Triangle ACD has a right angle at D and its hypotenuse AC has length r, so
	// the angle at A is the arccosine of |AD|/r. If |AB| > 2r there are no circles, if |AB| = 2r there is only one.
	chord := LengthBetween(end, start)
	clamped := false
	if 2.0*r < chord {
		if arcEpsilon < chord-2.0*r {
			return ArcResult{}, fmt.Errorf("%w: distance %v between start and end exceeds the diameter %v", ErrInfeasible, chord, 2.0*r)
		}
		r = chord / 2.0
		clamped = true
	}

	// set directly when clamped to avoid rounding errors
	radiusAngle := 0.0
	if !clamped {
		radiusAngle = math.Acos(chord / 2.0 / r)
	}
	segmentAngle := AngleBetween(end, start)

	arc := arcCandidate(start, end, r, segmentAngle+radiusAngle)
	if chooseArcCandidate(arc.StartAngle, arc.EndAngle, large, clockwise) == arcCandidateOther {
		arc = arcCandidate(start, end, r, segmentAngle-radiusAngle)
	}
	arc.StartAngle = RadToDeg(arc.StartAngle)
	arc.EndAngle = RadToDeg(arc.EndAngle)
	return arc, nil
}

type arcCandidateKind int

const (
	arcCandidateFirst arcCandidateKind = iota // center at segmentAngle+radiusAngle as seen from start
	arcCandidateOther                         // center at segmentAngle-radiusAngle as seen from start
)

// arcCandidate returns the center at distance r from start in the direction theta, with the angles in radians of start and end as seen from that center.
func arcCandidate(start, end Point, r, theta float64) ArcResult {
	center := start.Add(UnitVector(theta).Mul(r))
	return ArcResult{
		Center:     center,
		StartAngle: AngleBetween(start, center),
		EndAngle:   AngleBetween(end, center),
	}
}

// chooseArcCandidate returns arcCandidateFirst if the circle on which start and end have the given angles in radians matches the large and clockwise flags, and arcCandidateOther otherwise.
func chooseArcCandidate(startAngle, endAngle float64, large, clockwise bool) arcCandidateKind {
	short := shortArcClockwise(startAngle, endAngle)
	if short && large != clockwise || !short && large == clockwise {
		return arcCandidateFirst
	}
	return arcCandidateOther
}

// shortArcClockwise returns true if the arc of at most 180 degrees from startAngle to endAngle runs along increasing angles.
func shortArcClockwise(startAngle, endAngle float64) bool {
	if math.Pi < math.Abs(endAngle-startAngle) {
		if startAngle < endAngle {
			return startAngle < endAngle-2.0*math.Pi
		}
		return startAngle-2.0*math.Pi < endAngle
	}
	return startAngle < endAngle
}
