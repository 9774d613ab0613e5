package colorspace

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// RGBValue is the {r,g,b} external representation.
type RGBValue struct {
	R int `json:"r" yaml:"r" validate:"gte=0,lte=255"`
	G int `json:"g" yaml:"g" validate:"gte=0,lte=255"`
	B int `json:"b" yaml:"b" validate:"gte=0,lte=255"`
}

// HSVValue is the {h,s,v} external representation.
type HSVValue struct {
	H float64 `json:"h" yaml:"h" validate:"gte=0,lte=360"`
	S float64 `json:"s" yaml:"s" validate:"gte=0,lte=100"`
	V float64 `json:"v" yaml:"v" validate:"gte=0,lte=100"`
}

// Color is a stop color in one external representation. Space selects which
// payload field is meaningful; the others are zero.
type Color struct {
	Space Space
	RGB   RGBValue
	HSV   HSVValue
	Hex   string
}

// FromRGB builds an RGB color.
func FromRGB(r, g, b int) Color {
	return Color{Space: RGB, RGB: RGBValue{R: r, G: g, B: b}}
}

// FromHSV builds an HSV color.
func FromHSV(h, s, v float64) Color {
	return Color{Space: HSV, HSV: HSVValue{H: h, S: s, V: v}}
}

// FromHex builds a hex color. The string is kept verbatim; it is parsed
// when the color is converted.
func FromHex(hex string) Color {
	return Color{Space: Hex, Hex: hex}
}

// CSS formats the color the way a canvas color stop expects it.
func (c Color) CSS() string {
	switch c.Space {
	case HSV:
		return fmt.Sprintf("hsv(%s, %s, %s)", trimFloat(c.HSV.H), trimFloat(c.HSV.S), trimFloat(c.HSV.V))
	case Hex:
		return c.Hex
	default:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.RGB.R, c.RGB.G, c.RGB.B)
	}
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.CSS()
}

// Interface returns the generic shape of the color as it appears in a bound
// value: a map for RGB and HSV, a string for hex.
func (c Color) Interface() any {
	switch c.Space {
	case HSV:
		return map[string]any{"h": c.HSV.H, "s": c.HSV.S, "v": c.HSV.V}
	case Hex:
		return c.Hex
	default:
		return map[string]any{"r": c.RGB.R, "g": c.RGB.G, "b": c.RGB.B}
	}
}

// MarshalJSON writes the color in its external shape.
func (c Color) MarshalJSON() ([]byte, error) {
	switch c.Space {
	case HSV:
		return json.Marshal(c.HSV)
	case Hex:
		return json.Marshal(c.Hex)
	default:
		return json.Marshal(c.RGB)
	}
}

// UnmarshalJSON accepts any of the three external shapes.
func (c *Color) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, ok := FromAny(raw)
	if !ok {
		return fmt.Errorf("color %s matches no known representation", string(data))
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color in its external shape.
func (c Color) MarshalYAML() (any, error) {
	switch c.Space {
	case HSV:
		return c.HSV, nil
	case Hex:
		return c.Hex, nil
	default:
		return c.RGB, nil
	}
}

// UnmarshalYAML accepts any of the three external shapes.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, ok := FromAny(raw)
	if !ok {
		return fmt.Errorf("color %v matches no known representation", raw)
	}
	*c = parsed
	return nil
}

// FromAny inspects a decoded JSON/YAML value and reports which representation
// it carries. Objects must define all three channels of exactly one kind.
func FromAny(raw any) (Color, bool) {
	switch v := raw.(type) {
	case string:
		return FromHex(v), true
	case Color:
		return v, true
	case map[string]any:
		return fromMap(v)
	case map[any]any:
		converted := make(map[string]any, len(v))
		for key, value := range v {
			name, ok := key.(string)
			if !ok {
				return Color{}, false
			}
			converted[name] = value
		}
		return fromMap(converted)
	default:
		return Color{}, false
	}
}

func fromMap(m map[string]any) (Color, bool) {
	r, rok := Number(m["r"])
	g, gok := Number(m["g"])
	b, bok := Number(m["b"])
	if rok && gok && bok {
		return FromRGB(int(math.Round(r)), int(math.Round(g)), int(math.Round(b))), true
	}

	h, hok := Number(m["h"])
	s, sok := Number(m["s"])
	v, vok := Number(m["v"])
	if hok && sok && vok {
		return FromHSV(h, s, v), true
	}

	return Color{}, false
}

// Number extracts a finite float from a decoded JSON or YAML scalar.
func Number(value any) (float64, bool) {
	f, ok := number(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func number(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func trimFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}
