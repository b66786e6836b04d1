package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func setEpsilon(eps float64) func() {
	origEpsilon := Epsilon
	Epsilon = eps
	return func() { Epsilon = origEpsilon }
}

func TestEqual(t *testing.T) {
	test.That(t, Equal(1.0, 1.0+1e-11))
	test.That(t, !Equal(1.0, 1.0+1e-9))

	defer setEpsilon(0.01)()
	test.That(t, Equal(1.0, 1.005))
	test.That(t, Point{1.0, 2.0}.Equals(Point{1.001, 1.999}))
}

func TestRoundTo(t *testing.T) {
	test.Float(t, roundTo(1.23456, 2), 1.23)
	test.Float(t, roundTo(0.999999999999999, 14), 1.0)
	test.That(t, roundTo(0.99999999999, 14) != 1.0)
	test.Float(t, roundTo(2.5, 0), 2.0)
	test.Float(t, roundTo(3.5, 0), 4.0)
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.That(t, Point{}.IsZero())
	test.That(t, !p.IsZero())
	test.T(t, p.Add(Point{1, 1}), Point{4, 5})
	test.T(t, p.Sub(Point{1, 1}), Point{2, 3})
	test.T(t, p.Mul(2.0), Point{6, 8})
	test.T(t, p.Rot90CW(), Point{4, -3})
	test.T(t, p.Rot90CCW(), Point{-4, 3})
	test.T(t, p.Rot90CW().Rot90CCW(), p)
	test.Float(t, p.Length(), 5.0)
	test.Float(t, Point{0, -1}.Angle(), 1.5*math.Pi)
	test.String(t, p.String(), "3,4")
	test.String(t, Point{-0.5, 1e21}.String(), "-0.5,1e+21")
}

func TestSize(t *testing.T) {
	test.String(t, Size{2.5, 4}.String(), "2.5,4")
}

func TestRect(t *testing.T) {
	r, err := NewRect(1, 2, 3, 4)
	test.Error(t, err)
	test.T(t, r, Rect{1, 2, 3, 4})
	test.Float(t, r.Left(), 1.0)
	test.Float(t, r.Top(), 2.0)
	test.Float(t, r.Right(), 4.0)
	test.Float(t, r.Bottom(), 6.0)
	test.T(t, r.Size(), Size{3, 4})
	test.String(t, r.String(), "1,2,3,4")

	_, err = NewRect(0, 0, 0, 0)
	test.Error(t, err)

	_, err = NewRect(0, 0, -1, 4)
	test.That(t, errors.Is(err, ErrInvalidArgument), err)

	_, err = NewRect(0, 0, 1, -4)
	test.That(t, errors.Is(err, ErrInvalidArgument), err)
}

func TestSolveQuadraticFormula(t *testing.T) {
	x1, x2 := solveQuadraticFormula(0.0, 0.0, 0.0)
	test.Float(t, x1, 0.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 0.0, 1.0)
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(0.0, 1.0, 1.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.0)
	test.Float(t, x1, -1.0)
	test.Float(t, x2, 0.0)

	x1, x2 = solveQuadraticFormula(1.0, 0.0, 0.0) // double root at zero
	test.Float(t, x1, 0.0)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 1.0) // discriminant negative
	test.Float(t, x1, math.NaN())
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(1.0, 1.0, 0.25) // discriminant zero
	test.Float(t, x1, -0.5)
	test.Float(t, x2, math.NaN())

	x1, x2 = solveQuadraticFormula(2.0, -5.0, 2.0) // negative b, flip x1 and x2
	test.Float(t, x1, 0.5)
	test.Float(t, x2, 2.0)
}
