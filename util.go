package clip

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by the Equals methods on Point, Rect and Segment.
var Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
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
	return equal(p.X, q.X) && equal(p.Y, q.Y)
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
	return math.Hypot(p.X, p.Y)
}

// Norm normalizes OP to be of certain length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle with its origin in the bottom-left corner. When used as a clip window, W and H must not be negative; zero-area windows are valid.
type Rect struct {
	X, Y, W, H float64
}

// Left returns the minimum x coordinate.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the maximum x coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the minimum y coordinate.
func (r Rect) Bottom() float64 {
	return r.Y
}

// Top returns the maximum y coordinate.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Empty returns true if the rectangle has zero area. An empty rectangle is still a valid clip window, points and segments on its boundary are visible.
func (r Rect) Empty() bool {
	return r.W == 0.0 || r.H == 0.0
}

// Equals returns true if R and Q are equal with tolerance Epsilon.
func (r Rect) Equals(q Rect) bool {
	return equal(r.X, q.X) && equal(r.Y, q.Y) && equal(r.W, q.W) && equal(r.H, q.H)
}

// ContainsPoint returns true if the point lies within or on the boundary of the rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Outcode(p) == Inside
}

// Add returns the bounding rectangle around R and Q.
func (r Rect) Add(q Rect) Rect {
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.Right(), q.Right())
	y1 := math.Max(r.Top(), q.Top())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.Right(), r.Top())
}
