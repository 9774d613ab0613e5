package control

import (
	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/reactive"
)

// ButtonID identifies the color button that opens the picker popup.
const ButtonID = "color-button"

// ColorPicker is the color editing sub-widget shown in the popup.
type ColorPicker interface {
	Value() *reactive.Value[colorspace.UniformColor]
	// FocusableIDs lists the elements that keep the popup open when they
	// receive focus.
	FocusableIDs() []string
	Focus(id string)
}

// NumberConstraints bounds a numeric editor.
type NumberConstraints struct {
	Step      float64
	Min       float64
	Max       float64
	Precision int
}

// PositionConstraints apply to the stop position editor.
var PositionConstraints = NumberConstraints{Step: 0.01, Min: 0, Max: 1, Precision: 2}

// NumberEditor edits the selected stop position.
type NumberEditor interface {
	Value() *reactive.Value[float64]
	Constraints() NumberConstraints
}

// Popup hosts the color picker.
type Popup interface {
	Shows() *reactive.Value[bool]
}

// Capturer grants exclusive pointer tracking for the duration of a drag.
// The returned func releases it.
type Capturer interface {
	Capture() (release func())
}

// BasicPicker is a ColorPicker backed by a plain cell.
type BasicPicker struct {
	value   *reactive.Value[colorspace.UniformColor]
	ids     []string
	focused string
}

// NewBasicPicker creates a picker whose focusable elements are ids.
func NewBasicPicker(ids ...string) *BasicPicker {
	return &BasicPicker{
		value: reactive.NewComparable(colorspace.UniformFromRGB255(0, 0, 0)),
		ids:   ids,
	}
}

func (p *BasicPicker) Value() *reactive.Value[colorspace.UniformColor] { return p.value }

func (p *BasicPicker) FocusableIDs() []string { return p.ids }

func (p *BasicPicker) Focus(id string) { p.focused = id }

// Focused returns the id passed to the last Focus call.
func (p *BasicPicker) Focused() string { return p.focused }

// BasicEditor is a NumberEditor that clamps and rounds to its constraints.
type BasicEditor struct {
	value       *reactive.Value[float64]
	constraints NumberConstraints
}

// NewBasicEditor creates an editor honouring c.
func NewBasicEditor(c NumberConstraints) *BasicEditor {
	return &BasicEditor{value: reactive.NewComparable(c.Min), constraints: c}
}

func (e *BasicEditor) Value() *reactive.Value[float64] { return e.value }

func (e *BasicEditor) Constraints() NumberConstraints { return e.constraints }

// Step nudges the value by n steps, clamped to the editor range.
func (e *BasicEditor) Step(n int) {
	e.value.Set(e.constraints.Clamp(e.value.Get() + float64(n)*e.constraints.Step))
}

// Clamp restricts v to [Min, Max] and rounds it to Precision decimals.
func (c NumberConstraints) Clamp(v float64) float64 {
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	return roundTo(v, c.Precision)
}

// BasicPopup is a Popup backed by a plain cell.
type BasicPopup struct {
	shows *reactive.Value[bool]
}

// NewBasicPopup creates a hidden popup.
func NewBasicPopup() *BasicPopup {
	return &BasicPopup{shows: reactive.NewComparable(false)}
}

func (p *BasicPopup) Shows() *reactive.Value[bool] { return p.shows }
