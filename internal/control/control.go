// Package control keeps the gradient editor's reactive state consistent:
// the bound stop list, the selection, the position editor, the color picker
// and the popup. All methods must be called from a single goroutine.
package control

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
	"github.com/alexisbeaulieu97/gradedit/internal/logger"
	"github.com/alexisbeaulieu97/gradedit/internal/raster"
	"github.com/alexisbeaulieu97/gradedit/internal/reactive"
)

// Options configures a Controller. Nil widgets are replaced with the Basic
// implementations from this package.
type Options struct {
	Space    colorspace.Space
	Expanded bool
	Width    int
	Height   int

	Picker   ColorPicker
	Editor   NumberEditor
	Popup    Popup
	Capturer Capturer
	Logger   *logger.Logger
}

// Controller drives one gradient editor.
type Controller struct {
	space  colorspace.Space
	log    *logger.Logger
	raster *raster.Rasterizer

	bound     *reactive.Value[gradient.Stops]
	expanded  *reactive.Value[bool]
	selection *reactive.Value[int]
	displayed *reactive.Value[int]
	position  *reactive.Value[float64]
	color     *reactive.Value[colorspace.UniformColor]

	picker ColorPicker
	editor NumberEditor
	popup  Popup

	positionLink *reactive.Link
	colorLink    *reactive.Link

	drag  dragState
	scope reactive.Scope
}

// New wires a controller around bound. The bound cell is the host-owned
// value; every edit assigns a new stop list to it.
func New(bound *reactive.Value[gradient.Stops], opts Options) (*Controller, error) {
	stops := bound.Get()
	if len(stops) < gradient.MinStops {
		return nil, fmt.Errorf("gradient has %d stops, need at least %d", len(stops), gradient.MinStops)
	}

	c := &Controller{
		space:  opts.Space,
		log:    opts.Logger,
		raster: raster.New(opts.Width, opts.Height),
		bound:  bound,
		picker: opts.Picker,
		editor: opts.Editor,
		popup:  opts.Popup,
	}
	c.drag.capturer = opts.Capturer
	if c.picker == nil {
		c.picker = NewBasicPicker()
	}
	if c.editor == nil {
		c.editor = NewBasicEditor(PositionConstraints)
	}
	if c.popup == nil {
		c.popup = NewBasicPopup()
	}

	if err := c.raster.Render(stops); err != nil {
		return nil, fmt.Errorf("render gradient: %w", err)
	}

	first, err := colorspace.ToInternal(stops[0].Color)
	if err != nil {
		return nil, fmt.Errorf("stop 0: %w", err)
	}

	c.expanded = reactive.NewComparable(opts.Expanded)
	c.selection = reactive.NewValue(0, nil)
	c.displayed = reactive.NewValue(0, nil)
	c.position = reactive.NewComparable(stops[0].Position)
	c.color = reactive.NewComparable(first)

	c.scope.Add(reactive.Passthrough(c.expanded, c.popup.Shows()))
	c.scope.Add(reactive.Passthrough(c.selection, c.displayed))
	c.positionLink = reactive.Passthrough(c.position, c.editor.Value())
	c.scope.Add(c.positionLink)
	c.colorLink = reactive.Passthrough(c.color, c.picker.Value())
	c.scope.Add(c.colorLink)

	c.scope.Add(c.selection.Subscribe(c.onSelectionChange))
	c.scope.Add(c.position.Subscribe(c.onPositionChange))
	c.scope.Add(c.color.Subscribe(c.onColorChange))
	c.scope.Add(c.bound.Subscribe(c.onBoundChange))
	c.scope.Add(reactive.Subscription(releaseFunc(c.drag.release)))

	c.log.Debug("controller ready", "stops", len(stops), "space", c.space.String())
	return c, nil
}

// Close releases every listener and any pointer capture. The controller
// must not be used afterwards.
func (c *Controller) Close() {
	c.scope.Close()
}

// Stops returns the current stop list.
func (c *Controller) Stops() gradient.Stops {
	return c.bound.Get()
}

// Space returns the external color representation in use.
func (c *Controller) Space() colorspace.Space {
	return c.space
}

// Bound exposes the host-owned cell.
func (c *Controller) Bound() *reactive.Value[gradient.Stops] {
	return c.bound
}

// Selection returns the selected stop index.
func (c *Controller) Selection() int {
	return c.selection.Get()
}

// Displayed exposes the index shown by the stop cycler view.
func (c *Controller) Displayed() *reactive.Value[int] {
	return c.displayed
}

// Position returns the selected stop position.
func (c *Controller) Position() float64 {
	return c.position.Get()
}

// Color returns the selected stop color.
func (c *Controller) Color() colorspace.UniformColor {
	return c.color.Get()
}

// Expanded reports the foldable state of the popup.
func (c *Controller) Expanded() bool {
	return c.expanded.Get()
}

// Picker returns the color picker in use.
func (c *Controller) Picker() ColorPicker { return c.picker }

// Editor returns the position editor in use.
func (c *Controller) Editor() NumberEditor { return c.editor }

// Popup returns the popup in use.
func (c *Controller) Popup() Popup { return c.popup }

// Raster returns the preview surface.
func (c *Controller) Raster() *raster.Rasterizer {
	return c.raster
}

// Snapshot returns the rendered gradient as a PNG data URL.
func (c *Controller) Snapshot() string {
	url, err := c.raster.Snapshot()
	if err != nil {
		c.log.Error(err, "snapshot failed")
		return ""
	}
	return url
}

// Select moves the selection to index. Out of range indices are ignored.
func (c *Controller) Select(index int) {
	cursor := c.cursor().Select(index)
	c.displayed.Set(cursor.Index)
}

// CycleSelection steps the selection; it stops at either end.
func (c *Controller) CycleSelection(d gradient.Direction) {
	cursor := c.cursor().Cycle(d)
	if cursor.Index == c.selection.Get() {
		return
	}
	c.displayed.Set(cursor.Index)
}

// AddStop inserts a stop next to the selection, colored with the rendered
// gradient at its position, and selects it.
func (c *Controller) AddStop() error {
	stops := c.bound.Get()
	index, pos, err := stops.InsertionPoint(c.selection.Get())
	if err != nil {
		return fmt.Errorf("add stop: %w", err)
	}

	rgb := c.raster.SampleColorAt(pos)
	color := colorspace.ToExternal(colorspace.UniformFromRGB255(rgb.R, rgb.G, rgb.B), c.space)

	c.bound.Set(stops.Insert(index, gradient.Stop{Color: color, Position: pos}))
	c.selection.Set(index)
	c.log.Debug("stop added", "index", index, "position", pos, "color", color.CSS())
	return nil
}

// RemoveStop deletes the selected stop. It reports false, leaving the
// gradient untouched, when only MinStops remain.
func (c *Controller) RemoveStop() bool {
	index := c.selection.Get()
	updated, ok := c.bound.Get().Remove(index)
	if !ok {
		c.log.Debug("stop removal refused", "index", index, "stops", len(c.bound.Get()))
		return false
	}

	cursor := c.cursor().AfterRemove()
	c.bound.Set(updated)
	c.selection.Set(cursor.Index)
	c.log.Debug("stop removed", "index", index)
	return true
}

// SetPosition edits the selected stop position through the editor, as if
// the user typed it. Values are clamped to the editor constraints.
func (c *Controller) SetPosition(pos float64) {
	c.editor.Value().Set(c.editor.Constraints().Clamp(pos))
}

// NudgePosition moves the selected stop by n editor steps.
func (c *Controller) NudgePosition(n int) {
	constraints := c.editor.Constraints()
	c.SetPosition(c.editor.Value().Get() + float64(n)*constraints.Step)
}

// SetColor edits the selected stop color through the picker.
func (c *Controller) SetColor(u colorspace.UniformColor) {
	c.picker.Value().Set(u)
}

// Replace swaps the whole stop list, as when the host reloads its value.
// The selection is clamped and the editors reseeded.
func (c *Controller) Replace(stops gradient.Stops) {
	if len(stops) < gradient.MinStops {
		c.log.Warn("ignoring replacement gradient", "stops", len(stops))
		return
	}
	cursor := gradient.Cursor{Index: c.selection.Get(), Len: len(c.bound.Get())}.Resize(len(stops))
	c.bound.Set(stops)
	c.selection.Set(cursor.Index)
}

// ToggleExpanded flips the popup open or closed. Opening focuses the first
// picker element.
func (c *Controller) ToggleExpanded() {
	c.expanded.Set(!c.expanded.Get())
	if c.expanded.Get() {
		if ids := c.picker.FocusableIDs(); len(ids) > 0 {
			c.picker.Focus(ids[0])
		}
	}
}

// Escape closes the popup. Edits already applied are kept.
func (c *Controller) Escape() {
	c.popup.Shows().Set(false)
}

// Blur handles focus leaving the popup or its button. next is the id of the
// element gaining focus, empty when focus leaves the editor. The popup
// stays open when focus moves within the picker or back to the button.
func (c *Controller) Blur(next string) {
	if next == ButtonID || slices.Contains(c.picker.FocusableIDs(), next) {
		return
	}
	c.popup.Shows().Set(false)
}

func (c *Controller) cursor() gradient.Cursor {
	return gradient.Cursor{Index: c.selection.Get(), Len: len(c.bound.Get())}
}

func (c *Controller) onSelectionChange(index int) {
	stops := c.bound.Get()
	if index < 0 || index >= len(stops) {
		return
	}

	stop := stops[index]
	u, err := colorspace.ToInternal(stop.Color)
	if err != nil {
		c.log.Error(err, "selected stop has an unreadable color", "index", index)
		u = c.color.Get()
	}

	c.position.SetSilently(stop.Position)
	c.positionLink.Suppress(func() { c.editor.Value().Set(stop.Position) })
	c.color.SetSilently(u)
	c.colorLink.Suppress(func() { c.picker.Value().Set(u) })
}

func (c *Controller) onPositionChange(pos float64) {
	index := c.selection.Get()
	c.bound.Set(c.bound.Get().SetPosition(index, pos))
	c.log.Debug("stop moved", "index", index, "position", pos)
}

func (c *Controller) onColorChange(u colorspace.UniformColor) {
	index := c.selection.Get()
	c.bound.Set(c.bound.Get().SetColor(index, u, c.space))
	c.log.Debug("stop recolored", "index", index, "color", u.Hex())
}

func (c *Controller) onBoundChange(stops gradient.Stops) {
	if err := c.raster.Render(stops); err != nil {
		c.log.Error(err, "render failed")
	}
	if sel := c.selection.Get(); sel >= len(stops) {
		c.selection.Set(len(stops) - 1)
	}
}

type releaseFunc func()

func (f releaseFunc) Unsubscribe() { f() }

func roundTo(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
