package gradient

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
)

// MinStops is the smallest number of stops a gradient may hold.
const MinStops = 2

// Stop anchors a color at a normalized position along the gradient.
type Stop struct {
	Color    colorspace.Color `json:"color" yaml:"color"`
	Position float64          `json:"stop" yaml:"stop" validate:"gte=0,lte=1"`
}

// Stops is an ordered stop sequence. Sequence order need not match position
// order. Mutating methods never touch the receiver; they return a new slice.
type Stops []Stop

// Default returns the black to white gradient used when a bound value is
// missing or malformed.
func Default() Stops {
	return Stops{
		{Color: colorspace.FromHex("#000000"), Position: 0},
		{Color: colorspace.FromHex("#ffffff"), Position: 1},
	}
}

// Clone returns an independent copy.
func (s Stops) Clone() Stops {
	out := make(Stops, len(s))
	copy(out, s)
	return out
}

// SetPosition replaces the stop at index with the same color and a new
// position. Callers clamp pos into [0,1] beforehand.
func (s Stops) SetPosition(index int, pos float64) Stops {
	if index < 0 || index >= len(s) {
		return s
	}
	out := s.Clone()
	out[index] = Stop{Color: s[index].Color, Position: pos}
	return out
}

// SetColor replaces the stop at index with the same position and the given
// color converted into space.
func (s Stops) SetColor(index int, color colorspace.UniformColor, space colorspace.Space) Stops {
	if index < 0 || index >= len(s) {
		return s
	}
	out := s.Clone()
	out[index] = Stop{Color: colorspace.ToExternal(color, space), Position: s[index].Position}
	return out
}

// Insert places a new stop at index, shifting later stops right.
func (s Stops) Insert(index int, stop Stop) Stops {
	if index < 0 {
		index = 0
	}
	if index > len(s) {
		index = len(s)
	}
	out := make(Stops, 0, len(s)+1)
	out = append(out, s[:index]...)
	out = append(out, stop)
	out = append(out, s[index:]...)
	return out
}

// Remove drops the stop at index. It reports false and returns the receiver
// unchanged when the gradient is already at MinStops.
func (s Stops) Remove(index int) (Stops, bool) {
	if len(s) <= MinStops || index < 0 || index >= len(s) {
		return s, false
	}
	out := make(Stops, 0, len(s)-1)
	out = append(out, s[:index]...)
	out = append(out, s[index+1:]...)
	return out, true
}

// Sorted returns a copy ordered by position. Ties keep sequence order.
func (s Stops) Sorted() Stops {
	out := s.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// Space reports the representation of the first stop, RGB for an empty
// sequence.
func (s Stops) Space() colorspace.Space {
	if len(s) == 0 {
		return colorspace.RGB
	}
	return s[0].Color.Space
}

// InsertionPoint computes where "add stop" places a new stop relative to
// the selection: halfway to the next stop, or halfway from the previous
// stop when the last stop is selected. Midpoints are floored to two
// decimals.
func (s Stops) InsertionPoint(selected int) (index int, pos float64, err error) {
	if len(s) < MinStops {
		return 0, 0, fmt.Errorf("gradient has %d stops, need at least %d", len(s), MinStops)
	}
	if selected < 0 || selected >= len(s) {
		return 0, 0, fmt.Errorf("selection %d out of range [0,%d)", selected, len(s))
	}

	if selected < len(s)-1 {
		cur, next := s[selected].Position, s[selected+1].Position
		return selected + 1, cur + Floor2((next-cur)/2), nil
	}

	prev, cur := s[selected-1].Position, s[selected].Position
	return selected, prev + Floor2((cur-prev)/2), nil
}

// Equal reports element-wise equality.
func (s Stops) Equal(other Stops) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Floor2 truncates f to two decimals, the precision of positions produced
// by insertion and dragging.
func Floor2(f float64) float64 {
	return math.Floor(f*100) / 100
}
