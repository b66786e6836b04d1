package geom

// intersectionLineLine intersects the lines through P1-P2 and P3-P4. The position along P1-P2 is ta and along P3-P4 is tb.
// see http://paulbourke.net/geometry/pointlineplane/
func intersectionLineLine(p1, p2, p3, p4 Point) (Point, float64, float64, bool) {
	div := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if div == 0.0 {
		// parallel or collinear, overlaps are not detected
		return Point{}, 0.0, 0.0, false
	}

	ta := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / div
	tb := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / div
	pos := Point{p1.X + ta*(p2.X-p1.X), p1.Y + ta*(p2.Y-p1.Y)}
	return pos, ta, tb, true
}

// LineIntersection returns the intersection of the infinite lines through P1-P2 and P3-P4. Parallel and collinear lines do not intersect.
func LineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	pos, _, _, ok := intersectionLineLine(p1, p2, p3, p4)
	return pos, ok
}

// SegmentIntersection returns the intersection of the line segments P1-P2 and P3-P4. Segments that only touch at an endpoint do not intersect, neither do collinear segments.
func SegmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	pos, ta, tb, ok := intersectionLineLine(p1, p2, p3, p4)
	if !ok || !(0.0 < ta && ta < 1.0 && 0.0 < tb && tb < 1.0) {
		return Point{}, false
	}
	return pos, true
}

// RectSegmentIntersection returns the first intersection of the line segment P1-P2 with the sides of the rectangle, tested in the order left, top, right, bottom. It is not necessarily the intersection closest to P1.
func RectSegmentIntersection(r Rect, p1, p2 Point) (Point, bool) {
	lt := Point{r.Left(), r.Top()}
	rt := Point{r.Right(), r.Top()}
	lb := Point{r.Left(), r.Bottom()}
	rb := Point{r.Right(), r.Bottom()}
	sides := [4][2]Point{
		{lt, lb}, // left
		{lt, rt}, // top
		{rt, rb}, // right
		{lb, rb}, // bottom
	}
	for _, side := range sides {
		if pos, ok := SegmentIntersection(side[0], side[1], p1, p2); ok {
			return pos, true
		}
	}
	return Point{}, false
}
