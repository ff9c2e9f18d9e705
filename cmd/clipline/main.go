package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/clip"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type Options struct {
	Window string   `short:"w" default:"100,100,100,100" desc:"Clip window as x,y,w,h"`
	Output string   `short:"o" desc:"Output PNG filename"`
	Width  int      `default:"800" desc:"Image width in pixels"`
	Stroke float64  `default:"2" desc:"Stroke width in pixels"`
	Args   []string `index:"*" desc:"Line segments as x0,y0,x1,y1"`
}

var options Options

func main() {
	root := argp.New("Line clipping toolkit")
	root.AddCmd(&options, "clip", "Clip line segments against a rectangular window")

	root.Parse()
	root.PrintHelp()
}

func (opts *Options) Run() error {
	args := opts.Args
	if len(args) == 0 {
		return argp.ShowUsage
	}

	window, err := clip.ParseRect(options.Window)
	if err != nil {
		return err
	}
	fmt.Println("window:", window)

	segments := make([]clip.Segment, 0, len(args))
	clipped := make([]clip.Segment, 0, len(args))
	visible := make([]bool, 0, len(args))
	for _, arg := range args {
		s, err := clip.ParseSegment(arg)
		if err != nil {
			return err
		}
		c, ok := s.Clip(window)
		if ok {
			fmt.Printf("%v => %v\n", s, c)
		} else {
			fmt.Printf("%v => not visible\n", s)
		}
		segments = append(segments, s)
		clipped = append(clipped, c)
		visible = append(visible, ok)
	}

	if options.Output != "" {
		img := render(window, segments, clipped, visible)
		w, err := os.Create(options.Output)
		if err != nil {
			return err
		}
		defer w.Close()
		if err := png.Encode(w, img); err != nil {
			return err
		}
	}
	return nil
}

// render draws the original segments in gray, the window outline in black, and the visible parts in red.
func render(window clip.Rect, segments, clipped []clip.Segment, visible []bool) image.Image {
	bounds := window
	for _, s := range segments {
		bounds = bounds.Add(s.Bounds())
	}
	pad := 0.05 * math.Max(bounds.W, bounds.H)
	if pad == 0.0 {
		pad = 1.0
	}
	bounds = clip.Rect{X: bounds.X - pad, Y: bounds.Y - pad, W: bounds.W + 2.0*pad, H: bounds.H + 2.0*pad}

	scale := float64(options.Width) / bounds.W
	width := options.Width
	height := int(bounds.H*scale + 0.5)
	toImage := func(p clip.Point) clip.Point {
		return clip.Point{X: (p.X - bounds.X) * scale, Y: float64(height) - (p.Y-bounds.Y)*scale}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	strokeAll(img, segments, toImage, options.Stroke, color.RGBA{176, 176, 176, 255})

	outline := []clip.Segment{
		{P0: clip.Point{X: window.Left(), Y: window.Bottom()}, P1: clip.Point{X: window.Right(), Y: window.Bottom()}},
		{P0: clip.Point{X: window.Right(), Y: window.Bottom()}, P1: clip.Point{X: window.Right(), Y: window.Top()}},
		{P0: clip.Point{X: window.Right(), Y: window.Top()}, P1: clip.Point{X: window.Left(), Y: window.Top()}},
		{P0: clip.Point{X: window.Left(), Y: window.Top()}, P1: clip.Point{X: window.Left(), Y: window.Bottom()}},
	}
	strokeAll(img, outline, toImage, options.Stroke, color.RGBA{0, 0, 0, 255})

	vis := []clip.Segment{}
	for i, c := range clipped {
		if visible[i] {
			vis = append(vis, c)
		}
	}
	strokeAll(img, vis, toImage, 2.0*options.Stroke, color.RGBA{204, 0, 0, 255})
	return img
}

// strokeAll rasterizes each segment as a quad of the given width with square caps, so that zero-length segments remain visible.
func strokeAll(img draw.Image, segments []clip.Segment, toImage func(clip.Point) clip.Point, width float64, col color.RGBA) {
	size := img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	for _, s := range segments {
		p0, p1 := toImage(s.P0), toImage(s.P1)
		d := p1.Sub(p0)
		if d.IsZero() {
			d = clip.Point{X: 1.0, Y: 0.0}
		}
		t := d.Norm(width / 2.0)
		n := t.Rot90CW()
		a := p0.Sub(t).Add(n)
		b := p1.Add(t).Add(n)
		c := p1.Add(t).Sub(n)
		e := p0.Sub(t).Sub(n)
		ras.MoveTo(float32(a.X), float32(a.Y))
		ras.LineTo(float32(b.X), float32(b.Y))
		ras.LineTo(float32(c.X), float32(c.Y))
		ras.LineTo(float32(e.X), float32(e.Y))
		ras.ClosePath()
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}
