package clip

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// parseFloats fills f with numbers parsed from s, separated by commas or whitespace.
func parseFloats(s string, f []float64) error {
	b := []byte(s)
	i := 0
	for j := range f {
		i += skipCommaWhitespace(b[i:])
		num, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return fmt.Errorf("bad number in %q at position %d", s, i)
		}
		f[j] = num
		i += n
	}
	i += skipCommaWhitespace(b[i:])
	if i != len(b) {
		return fmt.Errorf("unexpected %q in %q at position %d", b[i:], s, i)
	}
	return nil
}

// ParseSegment parses a segment from a list of four numbers "x0,y0 x1,y1". Numbers may be separated by commas or whitespace.
func ParseSegment(s string) (Segment, error) {
	var f [4]float64
	if err := parseFloats(s, f[:]); err != nil {
		return Segment{}, err
	}
	return Segment{Point{f[0], f[1]}, Point{f[2], f[3]}}, nil
}

// ParseRect parses a rectangle from a list of four numbers "x,y,w,h". Numbers may be separated by commas or whitespace, and the width and height must not be negative.
func ParseRect(s string) (Rect, error) {
	var f [4]float64
	if err := parseFloats(s, f[:]); err != nil {
		return Rect{}, err
	}
	if f[2] < 0.0 || f[3] < 0.0 {
		return Rect{}, fmt.Errorf("negative width or height in %q", s)
	}
	return Rect{f[0], f[1], f[2], f[3]}, nil
}
