package geom

import "math"

// VectorLength returns the length of the vector (vx,vy).
func VectorLength(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}

// VectorAngle returns the angle in radians of the vector (vx,vy) with the x-axis, in the range [0,2PI). The vector must not be of zero length.
func VectorAngle(vx, vy float64) float64 {
	theta := math.Acos(vx / VectorLength(vx, vy))

	// arccos only covers [0,PI], reflect across the x-axis for negative y
	if vy < 0.0 {
		theta = 2.0*math.Pi - theta
		if theta == 2.0*math.Pi {
			theta = 0.0
		}
	}
	return theta
}

// UnitVector returns the vector of length one pointing in the direction of theta in radians.
func UnitVector(theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	return Point{costheta, sintheta}
}

// AngleBetween returns the angle in radians of the vector from Q to P, in the range [0,2PI).
func AngleBetween(p, q Point) float64 {
	return VectorAngle(p.X-q.X, p.Y-q.Y)
}

// LengthBetween returns the length of the vector from Q to P.
func LengthBetween(p, q Point) float64 {
	return VectorLength(p.X-q.X, p.Y-q.Y)
}

// Distance returns the Euclidean distance between P and Q.
func Distance(p, q Point) float64 {
	return math.Sqrt(math.Pow(q.X-p.X, 2.0) + math.Pow(q.Y-p.Y, 2.0))
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg / 180.0 * math.Pi
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad / math.Pi * 180.0
}
