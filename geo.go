package geom

import (
	"math"

	"github.com/paulmach/orb"
	"golang.org/x/image/math/f64"
)

// GreatCircleDistance returns the shortest distance over the surface of a sphere with the given radius between two points given by their latitude and longitude in degrees.
func GreatCircleDistance(radius, lat1, lon1, lat2, lon2 float64) float64 {
	lat1, lon1 = DegToRad(lat1), DegToRad(lon1)
	lat2, lon2 = DegToRad(lat2), DegToRad(lon2)

	// spherical law of cosines
	cos := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	cos = math.Max(-1.0, math.Min(1.0, cos)) // rounding may exceed 1 for coincident points
	return radius * math.Acos(cos)
}

// GeoDistance returns the great circle distance in meters between two points on the earth in [lon, lat] order.
func GeoDistance(p, q orb.Point) float64 {
	return GreatCircleDistance(orb.EarthRadius, p.Lat(), p.Lon(), q.Lat(), q.Lon())
}

// Orb returns the point as an orb.Point.
func (p Point) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

// PointFromOrb returns the orb.Point as a Point.
func PointFromOrb(p orb.Point) Point {
	return Point{p.X(), p.Y()}
}

// Vec2 returns the point as a vector used by golang.org/x/image.
func (p Point) Vec2() f64.Vec2 {
	return f64.Vec2{p.X, p.Y}
}

// Bound returns the rectangle as an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.Left(), r.Top()},
		Max: orb.Point{r.Right(), r.Bottom()},
	}
}

// RectFromBound returns the orb.Bound as a Rect. An empty bound, with its minimum beyond its maximum, returns an error.
func RectFromBound(b orb.Bound) (Rect, error) {
	return NewRect(b.Min.X(), b.Min.Y(), b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y())
}
