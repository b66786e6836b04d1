package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/geom"
)

var stdout io.Writer = os.Stdout

type Geom struct{}

type Arc struct {
	Rx        float64 `default:"1" desc:"Horizontal radius"`
	Ry        float64 `default:"1" desc:"Vertical radius"`
	Large     bool    `short:"l" desc:"Select the arc of at least 180 degrees"`
	Clockwise bool    `short:"c" desc:"Travel from start to end along increasing angles"`
	Start     string  `index:"0" desc:"Start point as x,y"`
	End       string  `index:"1" desc:"End point as x,y"`
}

type Intersect struct {
	Lines bool   `short:"l" desc:"Intersect the infinite lines instead of the segments"`
	P1    string `index:"0" desc:"First point of the first segment"`
	P2    string `index:"1" desc:"Second point of the first segment"`
	P3    string `index:"2" desc:"First point of the second segment"`
	P4    string `index:"3" desc:"Second point of the second segment"`
}

type Rect struct {
	Rect string `index:"0" desc:"Rectangle as x,y,width,height"`
	P1   string `index:"1" desc:"First point of the segment"`
	P2   string `index:"2" desc:"Second point of the segment"`
}

type Ellipse struct {
	A      float64 `short:"a" default:"1" desc:"Semi-axis along x"`
	B      float64 `short:"b" default:"1" desc:"Semi-axis along y"`
	Center string  `default:"0,0" desc:"Center as x,y"`
	P1     string  `index:"0" desc:"First point of the segment"`
	P2     string  `index:"1" desc:"Second point of the segment"`
}

type Distance struct {
	Radius float64 `short:"r" default:"6378137" desc:"Sphere radius, defaults to the earth radius in meters"`
	From   string  `index:"0" desc:"First location as lat,lon in degrees"`
	To     string  `index:"1" desc:"Second location as lat,lon in degrees"`
}

func main() {
	root := argp.NewCmd(&Geom{}, "Planar geometry toolkit for arcs, intersections and ellipses")
	root.AddCmd(&Arc{}, "arc", "Find the center of an arc given by its endpoints")
	root.AddCmd(&Intersect{}, "intersect", "Intersect two line segments")
	root.AddCmd(&Rect{}, "rect", "Intersect a line segment with the sides of a rectangle")
	root.AddCmd(&Ellipse{}, "ellipse", "Intercept a line segment with an ellipse")
	root.AddCmd(&Distance{}, "distance", "Great circle distance between two locations")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Geom) Run() error {
	return argp.ShowUsage
}

func parsePoints(ss ...string) ([]geom.Point, error) {
	ps := make([]geom.Point, len(ss))
	for i, s := range ss {
		if s == "" {
			return nil, argp.ShowUsage
		}

		var err error
		if ps[i], err = geom.ParsePoint(s); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func (cmd *Arc) Run() error {
	ps, err := parsePoints(cmd.Start, cmd.End)
	if err != nil {
		return err
	}

	arc, err := geom.ArcCenter(ps[0], ps[1], cmd.Rx, cmd.Ry, cmd.Large, cmd.Clockwise)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, arc)
	return nil
}

func (cmd *Intersect) Run() error {
	ps, err := parsePoints(cmd.P1, cmd.P2, cmd.P3, cmd.P4)
	if err != nil {
		return err
	}

	intersect := geom.SegmentIntersection
	if cmd.Lines {
		intersect = geom.LineIntersection
	}
	if p, ok := intersect(ps[0], ps[1], ps[2], ps[3]); ok {
		fmt.Fprintln(stdout, p)
	} else {
		fmt.Fprintln(stdout, "no intersection")
	}
	return nil
}

func (cmd *Rect) Run() error {
	if cmd.Rect == "" {
		return argp.ShowUsage
	}
	rect, err := geom.ParseRect(cmd.Rect)
	if err != nil {
		return err
	}
	ps, err := parsePoints(cmd.P1, cmd.P2)
	if err != nil {
		return err
	}

	if p, ok := geom.RectSegmentIntersection(rect, ps[0], ps[1]); ok {
		fmt.Fprintln(stdout, p)
	} else {
		fmt.Fprintln(stdout, "no intersection")
	}
	return nil
}

func (cmd *Ellipse) Run() error {
	if !(0.0 < cmd.A) || !(0.0 < cmd.B) {
		return fmt.Errorf("%w: semi-axes must be positive", geom.ErrInvalidArgument)
	}
	ps, err := parsePoints(cmd.Center, cmd.P1, cmd.P2)
	if err != nil {
		return err
	}

	intercepts := geom.EllipseSegmentInterceptsAt(cmd.A, cmd.B, ps[0], ps[1], ps[2])
	if len(intercepts) == 0 {
		fmt.Fprintln(stdout, "no intercepts")
	}
	for _, p := range intercepts {
		fmt.Fprintln(stdout, p)
	}
	return nil
}

func (cmd *Distance) Run() error {
	ps, err := parsePoints(cmd.From, cmd.To)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, geom.GreatCircleDistance(cmd.Radius, ps[0].X, ps[0].Y, ps[1].X, ps[1].Y))
	return nil
}
