package clip

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestOutcode(t *testing.T) {
	window := Rect{100.0, 100.0, 100.0, 100.0}
	var tts = []struct {
		p    Point
		code Outcode
	}{
		{Point{150.0, 150.0}, Inside},
		{Point{50.0, 150.0}, Left},
		{Point{250.0, 150.0}, Right},
		{Point{150.0, 50.0}, Bottom},
		{Point{150.0, 250.0}, Top},
		{Point{50.0, 50.0}, Left | Bottom},
		{Point{50.0, 250.0}, Left | Top},
		{Point{250.0, 50.0}, Right | Bottom},
		{Point{250.0, 250.0}, Right | Top},

		// boundary coordinates are inside
		{Point{100.0, 150.0}, Inside},
		{Point{200.0, 150.0}, Inside},
		{Point{150.0, 100.0}, Inside},
		{Point{150.0, 200.0}, Inside},
		{Point{100.0, 100.0}, Inside},
		{Point{200.0, 200.0}, Inside},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, window.Outcode(tt.p), tt.code)
		})
	}
}

func TestOutcodeDegenerateWindow(t *testing.T) {
	window := Rect{100.0, 100.0, 0.0, 0.0}
	test.T(t, window.Outcode(Point{100.0, 100.0}), Inside)
	test.T(t, window.Outcode(Point{99.0, 100.0}), Left)
	test.T(t, window.Outcode(Point{101.0, 101.0}), Right | Top)
	test.T(t, window.Outcode(Point{99.0, 99.0}), Left | Bottom)
}

func TestOutcodeMutuallyExclusiveBits(t *testing.T) {
	window := Rect{100.0, 100.0, 100.0, 100.0}
	var tts = []Point{
		{50.0, 50.0}, {150.0, 150.0}, {250.0, 250.0}, {50.0, 250.0}, {250.0, 50.0},
		{100.0, 100.0}, {200.0, 200.0}, {0.0, 150.0}, {150.0, 0.0},
	}
	for i, p := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			code := window.Outcode(p)
			test.That(t, code&(Left|Right) != Left|Right)
			test.That(t, code&(Bottom|Top) != Bottom|Top)
		})
	}
}

func TestOutcodeString(t *testing.T) {
	test.String(t, Inside.String(), "Inside")
	test.String(t, Left.String(), "Left")
	test.String(t, Right.String(), "Right")
	test.String(t, Bottom.String(), "Bottom")
	test.String(t, Top.String(), "Top")
	test.String(t, (Left | Top).String(), "LeftTop")
	test.String(t, (Right | Bottom).String(), "RightBottom")
}
