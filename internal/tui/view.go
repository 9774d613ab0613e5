package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
)

// View renders the current state of the model. The first rows follow the
// layout constants in model.go so mouse coordinates map onto them.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(m.title()),
		m.renderButtons(),
		m.renderStrip(),
		m.renderMarkers(),
		m.renderControls(),
	}

	if m.ctrl.Popup().Shows().Get() {
		sections = append(sections, m.renderPopup())
	}

	switch {
	case m.err != nil:
		sections = append(sections, errorStyle.Render("error: "+m.err.Error()))
	case m.status != "":
		sections = append(sections, statusStyle.Render(m.status))
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	name := "untitled"
	if m.doc != nil {
		name = m.doc.Path()
	}
	return fmt.Sprintf("gradedit • %s (%s)", name, m.ctrl.Space())
}

func (m Model) renderButtons() string {
	indent := strings.Repeat(" ", addColumn)
	gap := strings.Repeat(" ", removeLeft-addColumn-addWidth)
	return indent + buttonStyle.Render("[+]") + gap + buttonStyle.Render("[-]")
}

func (m Model) renderStrip() string {
	pixels := m.ctrl.Raster().Pixels()
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", stripLeft))
	for col := 0; col < m.stripWidth; col++ {
		px := pixels[col*len(pixels)/m.stripWidth]
		b.WriteString(swatch(colorspace.RGBToHex([3]float64{float64(px.R), float64(px.G), float64(px.B)}), 1))
	}
	row := b.String()
	rows := make([]string, stripRows)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderMarkers() string {
	cells := make([]string, m.stripWidth)
	for i := range cells {
		cells[i] = " "
	}

	stops := m.ctrl.Stops()
	selected := m.ctrl.Selection()
	for i, stop := range stops {
		if i == selected {
			continue
		}
		cells[m.markerColumn(stop.Position)] = markerStyle.Render("△")
	}
	if selected >= 0 && selected < len(stops) {
		cells[m.markerColumn(stops[selected].Position)] = selectedMarkerStyle.Render("▲")
	}

	return strings.Repeat(" ", stripLeft) + strings.Join(cells, "")
}

func (m Model) markerColumn(pos float64) int {
	col := int(math.Floor(pos * float64(m.stripWidth-1)))
	if col < 0 {
		return 0
	}
	if col >= m.stripWidth {
		return m.stripWidth - 1
	}
	return col
}

func (m Model) renderControls() string {
	color := m.ctrl.Color()
	stops := m.ctrl.Stops()
	return fmt.Sprintf("%s%s %s   %s %s   %s %s %s",
		strings.Repeat(" ", stripLeft),
		labelStyle.Render("stop"),
		valueStyle.Render(fmt.Sprintf("◀ %d/%d ▶", m.ctrl.Displayed().Get()+1, len(stops))),
		labelStyle.Render("pos"),
		valueStyle.Render(fmt.Sprintf("%.2f", m.ctrl.Position())),
		labelStyle.Render("color"),
		swatch(color.Hex(), 2),
		valueStyle.Render(colorspace.ToExternal(color, m.ctrl.Space()).CSS()),
	)
}

func (m Model) renderPopup() string {
	input := m.picker.input.View()
	channels := m.picker.channels()
	if m.picker.focused == pickerChannelsID {
		channels = focusedStyle.Render("› " + channels)
	} else {
		channels = mutedStyle.Render("  " + channels)
	}

	lines := []string{
		swatch(m.picker.value.Get().Hex(), 12),
		input,
		channels,
	}
	if m.picker.err != nil {
		lines = append(lines, errorStyle.Render(m.picker.err.Error()))
	}
	if m.picker.focused == "" {
		lines = append(lines, mutedStyle.Render("tab to edit"))
	}
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
