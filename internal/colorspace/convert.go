package colorspace

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	gradediterrors "github.com/alexisbeaulieu97/gradedit/pkg/errors"
)

// HexToRGB decodes #rrggbb or #rgb. Shorthand digits are duplicated, so #abc
// decodes like #aabbcc. Any other length fails with a FormatError.
func HexToRGB(hex string) (RGBValue, error) {
	if len(hex) != 7 && len(hex) != 4 {
		return RGBValue{}, gradediterrors.NewFormatError(hex, fmt.Sprintf("expected hex string length of 7 or 4, but got %d", len(hex)), nil)
	}
	if hex[0] != '#' {
		return RGBValue{}, gradediterrors.NewFormatError(hex, "hex color must start with '#'", nil)
	}

	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return RGBValue{}, gradediterrors.NewFormatError(hex, "invalid hex digits", err)
	}
	r, g, b := c.RGB255()
	return RGBValue{R: int(r), G: int(g), B: int(b)}, nil
}

// RGBToHex formats channels as a lowercase #rrggbb string. Channels are
// rounded to the nearest integer and clamped to 0-255.
func RGBToHex(rgb [3]float64) string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, c := range rgb {
		fmt.Fprintf(&sb, "%02x", int(clamp(math.Round(c), 0, 255)))
	}
	return sb.String()
}

// RGBToHSV converts channels to hue degrees and saturation/value percent.
// A channel above 1 is read on the 0-255 scale, anything else on the 0-1
// scale, so both domains are accepted.
func RGBToHSV(rgb [3]float64) HSVValue {
	norm := func(c float64) float64 {
		if c > 1 {
			return c / 255
		}
		return c
	}
	return hsvFromUnit(norm(rgb[0]), norm(rgb[1]), norm(rgb[2]))
}

// HSVToRGB converts hue degrees and saturation/value percent to 0-255
// channels.
func HSVToRGB(hsv HSVValue) RGBValue {
	c := colorful.Hsv(math.Mod(hsv.H, 360), clamp(hsv.S/100, 0, 1), clamp(hsv.V/100, 0, 1)).Clamped()
	r, g, b := c.RGB255()
	return RGBValue{R: int(r), G: int(g), B: int(b)}
}

func hsvFromUnit(r, g, b float64) HSVValue {
	v := math.Max(r, math.Max(g, b))
	diff := v - math.Min(r, math.Min(g, b))

	var h, s float64
	if diff != 0 {
		s = diff / v
		diffc := func(c float64) float64 {
			return (v-c)/6/diff + 0.5
		}
		rr, gg, bb := diffc(r), diffc(g), diffc(b)

		switch v {
		case r:
			h = bb - gg
		case g:
			h = 1.0/3 + rr - bb
		default:
			h = 2.0/3 + gg - rr
		}

		if h < 0 {
			h++
		} else if h > 1 {
			h--
		}
	}

	hue := math.Round(h * 360)
	if hue >= 360 {
		hue = 0
	}

	return HSVValue{
		H: hue,
		S: round2(s * 100),
		V: round2(v * 100),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}
