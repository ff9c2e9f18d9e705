// Package clip clips 2D line segments against axis-aligned rectangular windows using the Cohen-Sutherland outcode algorithm.
package clip

import "fmt"

// Segment is a line segment between two endpoints. The endpoint order carries no geometric meaning but is preserved by Clip.
type Segment struct {
	P0, P1 Point
}

// Equals returns true if S and T have equal endpoints in the same order, with tolerance Epsilon.
func (s Segment) Equals(t Segment) bool {
	return s.P0.Equals(t.P0) && s.P1.Equals(t.P1)
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{s.P1, s.P0}
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Length()
}

// Bounds returns the bounding rectangle of the segment.
func (s Segment) Bounds() Rect {
	x0, x1 := s.P0.X, s.P1.X
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	y0, y1 := s.P0.Y, s.P1.Y
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (s Segment) String() string {
	return fmt.Sprintf("%v--%v", s.P0, s.P1)
}

// Clip clips the segment to the window using the Cohen-Sutherland algorithm. It returns the visible part of the segment and true, or the zero segment and false when no part of the segment lies within the window. Accepted segments keep their endpoint order: the returned P0 derives from s.P0.
//
// The window must not be inverted (negative W or H panics) and all coordinates must be finite. Points on the window boundary count as visible, and zero-area windows are valid.
//
// Each iteration moves one endpoint onto the boundary it violates, checking the outcode bits in the fixed order Top, Bottom, Right, Left and preferring P0 when both endpoints are outside, so that intermediate points are reproducible. Intersections are computed in full float64 precision, no rounding or snapping is applied.
func (s Segment) Clip(window Rect) (Segment, bool) {
	if window.W < 0.0 || window.H < 0.0 {
		panic("clip window must not have negative width or height")
	}

	outcode0 := window.Outcode(s.P0)
	outcode1 := window.Outcode(s.P1)
	for {
		if outcode0|outcode1 == Inside {
			// both endpoints inside, trivial accept
			return s, true
		} else if outcode0&outcode1 != Inside {
			// both endpoints beyond the same boundary, trivial reject
			return Segment{}, false
		}

		// clip the endpoint that lies outside, preferring P0 when both do
		outcode := outcode0
		if outcode0 == Inside {
			outcode = outcode1
		}

		// Intersect the supporting line x = x0 + t*dx, y = y0 + t*dy with the
		// violated boundary. The divisor cannot be zero: a segment parallel to a
		// boundary and beyond it has that boundary's bit set in both outcodes and
		// was trivially rejected above.
		d := s.P1.Sub(s.P0)
		var p Point
		if outcode&Top != 0 {
			p = Point{s.P0.X + d.X*(window.Top()-s.P0.Y)/nonzero(d.Y), window.Top()}
		} else if outcode&Bottom != 0 {
			p = Point{s.P0.X + d.X*(window.Bottom()-s.P0.Y)/nonzero(d.Y), window.Bottom()}
		} else if outcode&Right != 0 {
			p = Point{window.Right(), s.P0.Y + d.Y*(window.Right()-s.P0.X)/nonzero(d.X)}
		} else {
			p = Point{window.Left(), s.P0.Y + d.Y*(window.Left()-s.P0.X)/nonzero(d.X)}
		}

		if outcode == outcode0 {
			s.P0 = p
			outcode0 = window.Outcode(s.P0)
		} else {
			s.P1 = p
			outcode1 = window.Outcode(s.P1)
		}
	}
}

// Intersects returns true if any part of the segment lies within or on the boundary of the window.
func (s Segment) Intersects(window Rect) bool {
	_, ok := s.Clip(window)
	return ok
}

func nonzero(d float64) float64 {
	if d == 0.0 {
		panic("clipping against boundary parallel to segment, should be impossible!")
	}
	return d
}
