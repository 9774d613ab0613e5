package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/reactive"
)

const (
	pickerInputID    = "picker-input"
	pickerChannelsID = "picker-channels"

	hueStep   = 5.0
	valueStep = 0.05
)

// picker is the popup color editor: a text field accepting any color
// notation plus hue/value nudging.
type picker struct {
	value   *reactive.Value[colorspace.UniformColor]
	input   textinput.Model
	focused string
	err     error
}

func newPicker() *picker {
	input := textinput.New()
	input.Prompt = "color: "
	input.Placeholder = "#rrggbb, rgb(r, g, b) or hsv(h, s, v)"
	input.CharLimit = 32
	input.Width = 24

	p := &picker{
		value: reactive.NewComparable(colorspace.UniformFromRGB255(0, 0, 0)),
		input: input,
	}
	p.value.Subscribe(func(u colorspace.UniformColor) {
		p.input.SetValue(u.Hex())
		p.err = nil
	})
	return p
}

func (p *picker) Value() *reactive.Value[colorspace.UniformColor] { return p.value }

func (p *picker) FocusableIDs() []string { return []string{pickerInputID, pickerChannelsID} }

func (p *picker) Focus(id string) {
	p.focused = id
	if id == pickerInputID {
		p.input.Focus()
		return
	}
	p.input.Blur()
}

// next returns the element after the focused one, or "" when focus leaves
// the picker.
func (p *picker) next() string {
	ids := p.FocusableIDs()
	for i, id := range ids {
		if id == p.focused && i+1 < len(ids) {
			return ids[i+1]
		}
	}
	return ""
}

func (p *picker) editingText() bool {
	return p.focused == pickerInputID
}

// apply parses the text field and, when valid, makes it the picker value.
func (p *picker) apply() {
	c, err := colorspace.ParseColor(p.input.Value())
	if err != nil {
		p.err = err
		return
	}
	u, err := colorspace.ToInternal(c)
	if err != nil {
		p.err = err
		return
	}
	p.err = nil
	p.value.Set(u)
}

// nudge shifts hue by dh degrees and value by dv (fraction).
func (p *picker) nudge(dh, dv float64) {
	h, s, v := p.value.Get().Colorful().Hsv()
	h = math.Mod(h+dh+360, 360)
	v = math.Max(0, math.Min(1, v+dv))
	p.value.Set(colorspace.NewUniform(colorful.Hsv(h, s, v)))
}

func (p *picker) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *picker) channels() string {
	u := p.value.Get()
	rgb := u.RGB()
	hsv := u.HSV()
	return fmt.Sprintf("rgb %3d %3d %3d   hsv %3g %5.1f %5.1f", rgb.R, rgb.G, rgb.B, hsv.H, hsv.S, hsv.V)
}
