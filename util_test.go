package clip

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0}
	test.That(t, Point{}.IsZero())
	test.That(t, !p.IsZero())
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.T(t, p.Rot90CW(), Point{4.0, -3.0})
	test.T(t, p.Rot90CCW(), Point{-4.0, 3.0})
	test.Float(t, p.Length(), 5.0)
	test.T(t, p.Norm(10.0), Point{6.0, 8.0})
	test.T(t, Point{}.Norm(10.0), Point{})
	test.T(t, p.Interpolate(Point{5.0, 8.0}, 0.5), Point{4.0, 6.0})
	test.T(t, p.Interpolate(Point{5.0, 8.0}, 0.0), p)
	test.That(t, p.Equals(Point{3.0, 4.0}))
	test.That(t, !p.Equals(Point{3.0, 4.1}))
	test.String(t, p.String(), "[3; 4]")
}

func TestRect(t *testing.T) {
	r := Rect{100.0, 100.0, 100.0, 50.0}
	test.Float(t, r.Left(), 100.0)
	test.Float(t, r.Right(), 200.0)
	test.Float(t, r.Bottom(), 100.0)
	test.Float(t, r.Top(), 150.0)
	test.That(t, !r.Empty())
	test.That(t, Rect{100.0, 100.0, 0.0, 50.0}.Empty())
	test.That(t, Rect{100.0, 100.0, 100.0, 0.0}.Empty())
	test.That(t, Rect{}.Empty())
	test.That(t, r.Equals(Rect{100.0, 100.0, 100.0, 50.0}))
	test.That(t, !r.Equals(Rect{100.0, 100.0, 100.0, 51.0}))
	test.That(t, r.ContainsPoint(Point{150.0, 125.0}))
	test.That(t, r.ContainsPoint(Point{100.0, 100.0}))
	test.That(t, !r.ContainsPoint(Point{150.0, 151.0}))
	test.T(t, r.Add(Rect{0.0, 0.0, 50.0, 50.0}), Rect{0.0, 0.0, 200.0, 150.0})
	test.T(t, r.Add(r), r)
	test.String(t, r.String(), "[100; 100]--[200; 150]")
}
