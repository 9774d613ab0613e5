package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	gradediterrors "github.com/alexisbeaulieu97/gradedit/pkg/errors"
)

// ParseColor reads user-entered text: "#rrggbb", "#rgb", "rgb(r, g, b)" or
// "hsv(h, s, v)". The returned color keeps the representation of the input.
func ParseColor(text string) (Color, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.HasPrefix(trimmed, "#"):
		rgb, err := HexToRGB(trimmed)
		if err != nil {
			return Color{}, err
		}
		return FromHex(RGBToHex([3]float64{float64(rgb.R), float64(rgb.G), float64(rgb.B)})), nil
	case strings.HasPrefix(trimmed, "rgb("):
		vals, err := parseTriple(trimmed, "rgb(")
		if err != nil {
			return Color{}, err
		}
		for _, v := range vals {
			if v < 0 || v > 255 {
				return Color{}, gradediterrors.NewFormatError(text, "rgb channels must be within 0-255", nil)
			}
		}
		return FromRGB(int(vals[0]+0.5), int(vals[1]+0.5), int(vals[2]+0.5)), nil
	case strings.HasPrefix(trimmed, "hsv("):
		vals, err := parseTriple(trimmed, "hsv(")
		if err != nil {
			return Color{}, err
		}
		if vals[0] < 0 || vals[0] > 360 || vals[1] < 0 || vals[1] > 100 || vals[2] < 0 || vals[2] > 100 {
			return Color{}, gradediterrors.NewFormatError(text, "hsv components out of range", nil)
		}
		return FromHSV(vals[0], vals[1], vals[2]), nil
	default:
		return Color{}, gradediterrors.NewFormatError(text, "unrecognized color syntax", nil)
	}
}

func parseTriple(text, prefix string) ([3]float64, error) {
	var out [3]float64
	if !strings.HasSuffix(text, ")") {
		return out, gradediterrors.NewFormatError(text, "missing closing parenthesis", nil)
	}
	body := strings.TrimSuffix(strings.TrimPrefix(text, prefix), ")")
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return out, gradediterrors.NewFormatError(text, fmt.Sprintf("expected 3 components, got %d", len(parts)), nil)
	}
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return out, gradediterrors.NewFormatError(text, fmt.Sprintf("component %d is not a number", i+1), err)
		}
		out[i] = f
	}
	return out, nil
}
