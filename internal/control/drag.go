package control

import "math"

// Geometry locates the preview strip in pointer coordinates.
type Geometry struct {
	Left  float64
	Width float64
}

type dragState struct {
	dragging bool
	capturer Capturer
	releaser func()
}

func (d *dragState) acquire() {
	if d.releaser != nil || d.capturer == nil {
		return
	}
	d.releaser = d.capturer.Capture()
}

func (d *dragState) release() {
	d.dragging = false
	if d.releaser != nil {
		release := d.releaser
		d.releaser = nil
		release()
	}
}

// Dragging reports whether a marker drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag.dragging
}

// PointerDown starts dragging the marker at index and selects it.
func (c *Controller) PointerDown(index int) {
	if index < 0 || index >= len(c.bound.Get()) {
		return
	}
	c.drag.dragging = true
	c.drag.acquire()
	c.Select(index)
}

// PointerMove moves the dragged marker to the pointer. Positions are
// truncated to two decimals; positions outside [0,1] are ignored.
func (c *Controller) PointerMove(pointerX float64, g Geometry) {
	if !c.drag.dragging || g.Width <= 0 {
		return
	}
	x := math.Floor((pointerX-g.Left)/g.Width*100) / 100
	if x < 0 || x > 1 {
		return
	}
	c.editor.Value().Set(x)
}

// PointerUp ends any drag and releases the pointer capture.
func (c *Controller) PointerUp() {
	c.drag.release()
}

// MarkerAt returns the stop whose marker is within one column of pointerX.
// Columns are whole pointer units across the strip. When several markers
// qualify the selected stop wins, then the nearest.
func (c *Controller) MarkerAt(pointerX float64, g Geometry) (int, bool) {
	if g.Width <= 0 {
		return 0, false
	}
	col := math.Floor(pointerX - g.Left)
	best, bestDist := -1, math.Inf(1)
	selected := c.selection.Get()

	for i, stop := range c.bound.Get() {
		marker := math.Floor(stop.Position * g.Width)
		dist := math.Abs(marker - col)
		if dist > 1 {
			continue
		}
		if i == selected {
			return i, true
		}
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best, best >= 0
}
