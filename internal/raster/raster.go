// Package raster draws the gradient preview strip and answers color queries
// against the rendered pixels.
package raster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
)

const (
	// DefaultWidth is the preview width in pixels.
	DefaultWidth = 150
	// DefaultHeight is the preview height in pixels.
	DefaultHeight = 20

	dataURLPrefix = "data:image/png;base64,"
)

// Rasterizer owns the preview surface. It is not safe for concurrent use;
// the control drives it from a single event loop.
type Rasterizer struct {
	width  int
	height int
	pixmap *gg.Pixmap

	snapshot      string
	snapshotValid bool
}

// New allocates a surface of the given size. Non-positive dimensions fall
// back to the defaults.
func New(width, height int) *Rasterizer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Rasterizer{
		width:  width,
		height: height,
		pixmap: gg.NewPixmap(width, height),
	}
}

// Width returns the surface width in pixels.
func (r *Rasterizer) Width() int {
	return r.width
}

// Height returns the surface height in pixels.
func (r *Rasterizer) Height() int {
	return r.height
}

// Brush builds the horizontal linear gradient for stops spanning width
// pixels. Each stop color goes through its CSS form, as a canvas color stop
// would. gg blends between stops in linear sRGB, so a black to white ramp is
// lighter at its midpoint (about 188) than a gamma-space blend (about 128).
func Brush(stops gradient.Stops, width int) (*gg.LinearGradientBrush, error) {
	brush := gg.NewLinearGradientBrush(0, 0, float64(width), 0)
	for i, stop := range stops {
		c, err := colorspace.ParseColor(stop.Color.CSS())
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		u, err := colorspace.ToInternal(c)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		cf := u.Colorful()
		brush.AddColorStop(clamp01(stop.Position), gg.RGB(cf.R, cf.G, cf.B))
	}
	return brush, nil
}

// Render repaints the surface from stops: an opaque black background, then
// the gradient sampled at every pixel center.
func (r *Rasterizer) Render(stops gradient.Stops) error {
	brush, err := Brush(stops, r.width)
	if err != nil {
		return err
	}

	r.pixmap.Clear(gg.Black)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
			r.pixmap.SetPixel(x, y, over(c, gg.Black))
		}
	}

	r.snapshotValid = false
	return nil
}

// SampleColorAt reads back the rendered pixel at pos*width on the first row.
func (r *Rasterizer) SampleColorAt(pos float64) colorspace.RGBValue {
	x := int(math.Floor(clamp01(pos) * float64(r.width)))
	if x >= r.width {
		x = r.width - 1
	}
	return toRGB(r.pixmap.GetPixel(x, 0))
}

// Pixels returns the colors of the first row, left to right.
func (r *Rasterizer) Pixels() []colorspace.RGBValue {
	out := make([]colorspace.RGBValue, r.width)
	for x := range out {
		out[x] = toRGB(r.pixmap.GetPixel(x, 0))
	}
	return out
}

// EncodePNG writes the current surface as PNG.
func (r *Rasterizer) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.pixmap.ToImage())
}

// Snapshot returns the surface as a PNG data URL. The encoding is cached
// until the next Render.
func (r *Rasterizer) Snapshot() (string, error) {
	if r.snapshotValid {
		return r.snapshot, nil
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	r.snapshot = dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes())
	r.snapshotValid = true
	return r.snapshot, nil
}

// DecodeSnapshot returns the PNG bytes carried by a data URL produced by
// Snapshot.
func DecodeSnapshot(dataURL string) ([]byte, error) {
	if len(dataURL) < len(dataURLPrefix) || dataURL[:len(dataURLPrefix)] != dataURLPrefix {
		return nil, fmt.Errorf("not a png data url")
	}
	return base64.StdEncoding.DecodeString(dataURL[len(dataURLPrefix):])
}

func over(c, bg gg.RGBA) gg.RGBA {
	if c.A >= 1 {
		return c
	}
	return gg.RGB(
		c.R*c.A+bg.R*(1-c.A),
		c.G*c.A+bg.G*(1-c.A),
		c.B*c.A+bg.B*(1-c.A),
	)
}

func toRGB(c gg.RGBA) colorspace.RGBValue {
	return colorspace.RGBValue{
		R: int(math.Round(c.R * 255)),
		G: int(math.Round(c.G * 255)),
		B: int(math.Round(c.B * 255)),
	}
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
