package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestVectorLength(t *testing.T) {
	test.Float(t, VectorLength(3.0, 4.0), 5.0)
	test.Float(t, VectorLength(-3.0, -4.0), 5.0)
	test.Float(t, VectorLength(0.0, 0.0), 0.0)
	test.Float(t, LengthBetween(Point{4, 6}, Point{1, 2}), 5.0)
	test.Float(t, Distance(Point{1, 2}, Point{4, 6}), 5.0)
}

func TestVectorAngle(t *testing.T) {
	var tts = []struct {
		vx, vy float64
		theta  float64
	}{
		{1.0, 0.0, 0.0},
		{1.0, 1.0, 0.25 * math.Pi},
		{0.0, 1.0, 0.5 * math.Pi},
		{-1.0, 1.0, 0.75 * math.Pi},
		{-1.0, 0.0, math.Pi},
		{-1.0, -1.0, 1.25 * math.Pi},
		{0.0, -2.0, 1.5 * math.Pi},
		{1.0, -1.0, 1.75 * math.Pi},
		{1.0, -1e-300, 0.0}, // reflection rounds to 2PI
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			theta := VectorAngle(tt.vx, tt.vy)
			test.Float(t, theta, tt.theta)
			test.That(t, 0.0 <= theta && theta < 2.0*math.Pi, theta)
		})
	}
	test.Float(t, AngleBetween(Point{1, 3}, Point{1, 1}), 0.5*math.Pi)
	test.Float(t, AngleBetween(Point{1, 1}, Point{1, 3}), 1.5*math.Pi)
	test.Float(t, VectorAngle(0.0, 0.0), math.NaN())
}

func TestUnitVector(t *testing.T) {
	test.T(t, UnitVector(0.0), Point{1.0, 0.0})
	test.T(t, UnitVector(0.5*math.Pi), Point{0.0, 1.0})
	test.T(t, UnitVector(math.Pi), Point{-1.0, 0.0})
	test.Float(t, UnitVector(1.234).Length(), 1.0)
	test.Float(t, UnitVector(5.0).Angle(), 5.0)
}

func TestAngleConversion(t *testing.T) {
	test.Float(t, DegToRad(360.0), 2.0*math.Pi)
	test.Float(t, DegToRad(-90.0), -0.5*math.Pi)
	test.Float(t, RadToDeg(2.0*math.Pi), 360.0)
	test.Float(t, RadToDeg(DegToRad(123.4)), 123.4)
}
