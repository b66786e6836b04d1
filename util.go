package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Epsilon is the tolerance used by Equal and Point.Equals.
var Epsilon = 1e-10

var (
	// ErrInvalidArgument is returned for malformed parameters, such as a negative rectangle size or a non-positive radius.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInfeasible is returned when the input has no geometric solution.
	ErrInfeasible = errors.New("geometrically infeasible")
)

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// roundTo rounds f to prec decimals, halfway values are rounded to even.
func roundTo(f float64, prec int) float64 {
	pow := math.Pow10(prec)
	return math.RoundToEven(f*pow) / pow
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// IsZero returns true if P is exactly zero.
func (p Point) IsZero() bool {
	return p.X == 0.0 && p.Y == 0.0
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return VectorLength(p.X, p.Y)
}

// Angle returns the angle between the x-axis and OP in [0,2PI).
func (p Point) Angle() float64 {
	return VectorAngle(p.X, p.Y)
}

func (p Point) String() string {
	return ftos(p.X) + "," + ftos(p.Y)
}

////////////////////////////////////////////////////////////////

// Size is a width and height.
type Size struct {
	W, H float64
}

func (s Size) String() string {
	return ftos(s.W) + "," + ftos(s.H)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with (X,Y) its left-top corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect returns a rectangle, the width and height must be non-negative.
func NewRect(x, y, w, h float64) (Rect, error) {
	if w < 0.0 {
		return Rect{}, fmt.Errorf("%w: width must be non-negative, got %v", ErrInvalidArgument, w)
	} else if h < 0.0 {
		return Rect{}, fmt.Errorf("%w: height must be non-negative, got %v", ErrInvalidArgument, h)
	}
	return Rect{x, y, w, h}, nil
}

func (r Rect) Left() float64 {
	return r.X
}

func (r Rect) Top() float64 {
	return r.Y
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Size returns the width and height of the rectangle.
func (r Rect) Size() Size {
	return Size{r.W, r.H}
}

func (r Rect) String() string {
	return ftos(r.X) + "," + ftos(r.Y) + "," + ftos(r.W) + "," + ftos(r.H)
}

////////////////////////////////////////////////////////////////

// Numerically stable quadratic formula, lowest root is returned first
// see https://math.stackexchange.com/a/2007723
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0.0 {
		if b == 0.0 {
			if c == 0.0 {
				// all terms disappear, all x satisfy the solution
				return 0.0, math.NaN()
			}
			// linear term disappears, no solutions
			return math.NaN(), math.NaN()
		}
		// quadratic term disappears, solve linear equation
		return -c / b, math.NaN()
	}

	if c == 0.0 {
		// no constant term, one solution at zero and one from solving linearly
		if b == 0.0 {
			return 0.0, math.NaN()
		}
		x1, x2 := 0.0, -b/a
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		return x1, x2
	}

	discriminant := b*b - 4.0*a*c
	if discriminant < 0.0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0.0 {
		return -b / (2.0 * a), math.NaN()
	}

	// Avoid catastrophic cancellation, which occurs when we subtract two nearly equal numbers and causes a large error.
	// Calculate x where b and the radical have different signs, and use the Citardauq Formula for the other root.
	q := math.Sqrt(discriminant)
	if b < 0.0 {
		q = -q
	}
	x1 := -(b + q) / (2.0 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}
