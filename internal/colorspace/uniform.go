package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// UniformColor is the representation-independent color edited by the color
// picker. It stores sRGB channel fractions in [0,1].
type UniformColor struct {
	c colorful.Color
}

// NewUniform wraps a go-colorful color, clamping it into gamut.
func NewUniform(c colorful.Color) UniformColor {
	return UniformColor{c: c.Clamped()}
}

// UniformFromRGB255 builds a uniform color from 0-255 channels.
func UniformFromRGB255(r, g, b int) UniformColor {
	return NewUniform(colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
}

// Colorful exposes the underlying go-colorful value.
func (u UniformColor) Colorful() colorful.Color {
	return u.c
}

// RGB returns the color as rounded 0-255 channels.
func (u UniformColor) RGB() RGBValue {
	r, g, b := u.c.RGB255()
	return RGBValue{R: int(r), G: int(g), B: int(b)}
}

// HSV returns hue degrees and saturation/value percent using the gradient's
// rounding rules.
func (u UniformColor) HSV() HSVValue {
	return hsvFromUnit(u.c.R, u.c.G, u.c.B)
}

// Hex returns the lowercase #rrggbb form.
func (u UniformColor) Hex() string {
	rgb := u.RGB()
	return RGBToHex([3]float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)})
}

// Equal reports whether both colors round to the same 0-255 channels.
func (u UniformColor) Equal(other UniformColor) bool {
	return u.RGB() == other.RGB()
}

// ToExternal converts a uniform color into the requested representation.
func ToExternal(u UniformColor, space Space) Color {
	switch space {
	case HSV:
		hsv := u.HSV()
		return FromHSV(hsv.H, hsv.S, hsv.V)
	case Hex:
		return FromHex(u.Hex())
	default:
		rgb := u.RGB()
		return FromRGB(rgb.R, rgb.G, rgb.B)
	}
}

// ToInternal converts an external color into a uniform color. Hex strings
// are parsed and may fail with a FormatError.
func ToInternal(c Color) (UniformColor, error) {
	switch c.Space {
	case HSV:
		s := clamp(c.HSV.S/100, 0, 1)
		v := clamp(c.HSV.V/100, 0, 1)
		h := math.Mod(c.HSV.H, 360)
		if h < 0 {
			h += 360
		}
		return NewUniform(colorful.Hsv(h, s, v)), nil
	case Hex:
		rgb, err := HexToRGB(c.Hex)
		if err != nil {
			return UniformColor{}, err
		}
		return UniformFromRGB255(rgb.R, rgb.G, rgb.B), nil
	default:
		return UniformFromRGB255(c.RGB.R, c.RGB.G, c.RGB.B), nil
	}
}

// Convert re-encodes a color in another representation.
func Convert(c Color, space Space) (Color, error) {
	u, err := ToInternal(c)
	if err != nil {
		return Color{}, err
	}
	return ToExternal(u, space), nil
}
