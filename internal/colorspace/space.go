package colorspace

import "strings"

// Space identifies the external color representation used by a gradient.
type Space int

const (
	// RGB stores stops as {r,g,b} objects with 0-255 channels.
	RGB Space = iota
	// HSV stores stops as {h,s,v} objects, hue in degrees and s/v in percent.
	HSV
	// Hex stores stops as #rrggbb strings.
	Hex
)

// String returns the configuration keyword for the space.
func (s Space) String() string {
	switch s {
	case HSV:
		return "hsv"
	case Hex:
		return "hex"
	default:
		return "rgb"
	}
}

// ParseSpace maps a configuration keyword to a Space. Unknown or empty
// values fall back to RGB.
func ParseSpace(value string) Space {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "hsv":
		return HSV
	case "hex":
		return Hex
	default:
		return RGB
	}
}

// Spaces lists every supported representation in keyword order.
func Spaces() []Space {
	return []Space{RGB, HSV, Hex}
}

// MarshalText implements encoding.TextMarshaler.
func (s Space) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with the lenient
// fallback of ParseSpace.
func (s *Space) UnmarshalText(text []byte) error {
	*s = ParseSpace(string(text))
	return nil
}
