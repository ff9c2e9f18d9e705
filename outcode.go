package clip

import "strings"

// Outcode is a bit set that classifies a point's position relative to the four boundary half-planes of a rectangular window. Left and Right are mutually exclusive, as are Bottom and Top.
type Outcode uint8

const (
	Inside Outcode = 0x0
	Left   Outcode = 0x1
	Right  Outcode = 0x2
	Bottom Outcode = 0x4
	Top    Outcode = 0x8
)

// Outcode returns the region code of the point relative to the rectangle. Points on the boundary are classified as inside on that axis, so a zero outcode means the point lies within or on the rectangle.
//
// Coordinates must be finite, the result for NaN or infinite coordinates is undefined.
func (r Rect) Outcode(p Point) Outcode {
	code := Inside
	if p.X < r.Left() {
		code |= Left
	} else if p.X > r.Right() {
		code |= Right
	}
	if p.Y < r.Bottom() {
		code |= Bottom
	} else if p.Y > r.Top() {
		code |= Top
	}
	return code
}

func (code Outcode) String() string {
	if code == Inside {
		return "Inside"
	}
	sb := strings.Builder{}
	if code&Left != 0 {
		sb.WriteString("Left")
	}
	if code&Right != 0 {
		sb.WriteString("Right")
	}
	if code&Bottom != 0 {
		sb.WriteString("Bottom")
	}
	if code&Top != 0 {
		sb.WriteString("Top")
	}
	return sb.String()
}
