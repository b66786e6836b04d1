package geom

import (
	"bytes"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// parseFloats parses exactly n comma separated numbers, surrounding whitespace is allowed.
func parseFloats(s string, n int) ([]float64, error) {
	fields := bytes.Split([]byte(s), []byte{','})
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d comma separated numbers in %q", ErrInvalidArgument, n, s)
	}

	fs := make([]float64, n)
	for i, field := range fields {
		field = bytes.TrimSpace(field)
		f, m := strconv.ParseFloat(field)
		if m == 0 || m != len(field) {
			return nil, fmt.Errorf("%w: invalid number %q in %q", ErrInvalidArgument, field, s)
		}
		fs[i] = f
	}
	return fs, nil
}

// ParsePoint parses a point of the form "x,y".
func ParsePoint(s string) (Point, error) {
	fs, err := parseFloats(s, 2)
	if err != nil {
		return Point{}, err
	}
	return Point{fs[0], fs[1]}, nil
}

// ParseSize parses a size of the form "width,height".
func ParseSize(s string) (Size, error) {
	fs, err := parseFloats(s, 2)
	if err != nil {
		return Size{}, err
	}
	return Size{fs[0], fs[1]}, nil
}

// ParseRect parses a rectangle of the form "x,y,width,height". Width and height must be non-negative.
func ParseRect(s string) (Rect, error) {
	fs, err := parseFloats(s, 4)
	if err != nil {
		return Rect{}, err
	}
	return NewRect(fs[0], fs[1], fs[2], fs[3])
}
