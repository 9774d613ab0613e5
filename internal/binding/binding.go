// Package binding adapts the host-owned gradient value: deciding whether a
// raw value can be edited, reading it into a normalized stop list, and
// writing stop lists back in the configured shape.
package binding

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
)

// Variant selects the shape of the bound value.
type Variant int

const (
	// Object wraps the stops as {stops: [...]}.
	Object Variant = iota
	// List is a bare list of stops.
	List
)

func (v Variant) String() string {
	if v == List {
		return "list"
	}
	return "object"
}

// ParseVariant maps "list" or "object" to a Variant. Empty means Object.
func ParseVariant(value string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "object":
		return Object, nil
	case "list":
		return List, nil
	default:
		return Object, fmt.Errorf("unknown variant %q", value)
	}
}

// Params are the plugin parameters that shape reading and writing.
type Params struct {
	Space    colorspace.Space
	Expanded bool
	Variant  Variant
	// Min and Max are accepted for compatibility and otherwise unused.
	Min *float64
	Max *float64
}

// Document is the object-variant wire shape.
type Document struct {
	Stops gradient.Stops `json:"stops" yaml:"stops"`
}

// Bound is the value handed back to the host after every edit.
type Bound struct {
	Stops    gradient.Stops
	Gradient func() string
}

// Accept reports whether raw can be bound. Only a non-empty sequence that
// fails stop validation is refused; anything else is read leniently.
func Accept(raw any) bool {
	items, ok := stopItems(raw)
	if !ok || len(items) == 0 {
		return true
	}
	_, valid := decodeStops(items)
	return valid
}

// Read converts raw into a stop list in the configured space. Values that do
// not describe a gradient, or whose colors cannot be converted, yield the
// default gradient; the returned bool reports whether that happened.
func Read(raw any, p Params) (gradient.Stops, bool) {
	items, ok := stopItems(raw)
	if !ok {
		return defaultIn(p.Space), true
	}

	stops, valid := decodeStops(items)
	if !valid || len(stops) < gradient.MinStops {
		return defaultIn(p.Space), true
	}

	normalized, err := Normalize(stops, p.Space)
	if err != nil {
		return defaultIn(p.Space), true
	}
	return normalized, false
}

// Decode reads raw as written, without normalizing colors or clamping
// positions. It fails when raw is not a stop sequence or an item is not a
// stop.
func Decode(raw any) (gradient.Stops, error) {
	items, ok := stopItems(raw)
	if !ok {
		return nil, fmt.Errorf("value is not a list of stops")
	}
	for i, item := range items {
		if _, ok := decodeStop(item); !ok {
			return nil, fmt.Errorf("item %d is not a stop with color and stop fields", i)
		}
	}
	stops, _ := decodeStops(items)
	return stops, nil
}

// Normalize re-encodes every stop color into space and clamps positions to
// [0,1].
func Normalize(stops gradient.Stops, space colorspace.Space) (gradient.Stops, error) {
	out := make(gradient.Stops, len(stops))
	for i, stop := range stops {
		color, err := colorspace.Convert(stop.Color, space)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		out[i] = gradient.Stop{Color: color, Position: math.Max(0, math.Min(1, stop.Position))}
	}
	return out, nil
}

// Write shapes stops for the host according to variant.
func Write(stops gradient.Stops, variant Variant) any {
	if variant == List {
		return stops.Clone()
	}
	return Document{Stops: stops.Clone()}
}

// Value shapes the bound stops for serialization. The snapshot accessor is
// not part of the serialized form.
func (b Bound) Value(variant Variant) any {
	return Write(b.Stops, variant)
}

func defaultIn(space colorspace.Space) gradient.Stops {
	stops, err := Normalize(gradient.Default(), space)
	if err != nil {
		return gradient.Default()
	}
	return stops
}

func stopItems(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case gradient.Stops:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return items, true
	case Document:
		return stopItems(v.Stops)
	case map[string]any:
		if inner, ok := v["stops"]; ok {
			return stopItems(inner)
		}
	case map[any]any:
		if inner, ok := v["stops"]; ok {
			return stopItems(inner)
		}
	}
	return nil, false
}

func decodeStops(items []any) (gradient.Stops, bool) {
	stops := make(gradient.Stops, 0, len(items))
	for _, item := range items {
		stop, ok := decodeStop(item)
		if !ok {
			return nil, false
		}
		stops = append(stops, stop)
	}
	return stops, true
}

func decodeStop(item any) (gradient.Stop, bool) {
	var fields map[string]any
	switch v := item.(type) {
	case gradient.Stop:
		return v, true
	case map[string]any:
		fields = v
	case map[any]any:
		fields = make(map[string]any, len(v))
		for key, value := range v {
			name, ok := key.(string)
			if !ok {
				return gradient.Stop{}, false
			}
			fields[name] = value
		}
	default:
		return gradient.Stop{}, false
	}

	pos, ok := colorspace.Number(fields["stop"])
	if !ok {
		return gradient.Stop{}, false
	}
	color, ok := colorspace.FromAny(fields["color"])
	if !ok {
		return gradient.Stop{}, false
	}
	return gradient.Stop{Color: color, Position: pos}, true
}
