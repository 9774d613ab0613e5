package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.stripWidth = stripWidthFor(msg.Width)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case DocumentChangedMsg:
		stops, substituted := binding.Read(msg.Raw, m.params)
		if substituted {
			m.err = nil
			m.status = "ignored external edit: document no longer describes a gradient"
			break
		}
		m.ctrl.Replace(stops)
		m.state.dirty = false
		m.status = "reloaded from disk"

	case DocumentErrorMsg:
		m.err = msg.Err
		m.log.Error(msg.Err, "document watch failed")

	case savedMsg:
		m.state.saving = false
		if msg.Err != nil {
			m.err = msg.Err
			m.log.Error(msg.Err, "save failed")
		} else {
			m.err = nil
		}
	}

	if m.state.dirty && !m.state.saving && !m.quitting {
		m.state.dirty = false
		m.status = ""
		if save := m.saveCmd(); save != nil {
			m.state.saving = true
			cmd = tea.Batch(cmd, save)
		}
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	popupOpen := m.ctrl.Popup().Shows().Get()
	if popupOpen && m.picker.focused != "" {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Add):
		if err := m.ctrl.AddStop(); err != nil {
			m.err = err
		}

	case key.Matches(msg, m.keys.Remove):
		if !m.ctrl.RemoveStop() {
			m.status = "a gradient needs at least two stops"
		}

	case key.Matches(msg, m.keys.Previous):
		m.ctrl.CycleSelection(gradient.Previous)

	case key.Matches(msg, m.keys.Next):
		m.ctrl.CycleSelection(gradient.Next)

	case key.Matches(msg, m.keys.FarLeft):
		m.ctrl.NudgePosition(-10)

	case key.Matches(msg, m.keys.FarRight):
		m.ctrl.NudgePosition(10)

	case key.Matches(msg, m.keys.Left):
		m.ctrl.NudgePosition(-1)

	case key.Matches(msg, m.keys.Right):
		m.ctrl.NudgePosition(1)

	case key.Matches(msg, m.keys.Color):
		m.ctrl.ToggleExpanded()

	case key.Matches(msg, m.keys.Escape):
		m.ctrl.Escape()

	case key.Matches(msg, m.keys.FocusNext):
		if popupOpen {
			m.picker.Focus(pickerInputID)
		}
	}

	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.ctrl.Escape()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		next := m.picker.next()
		m.picker.Focus(next)
		m.ctrl.Blur(next)
		return m, nil
	}

	if m.picker.editingText() {
		if key.Matches(msg, m.keys.Apply) {
			m.picker.apply()
			return m, nil
		}
		return m, m.picker.update(msg)
	}

	switch msg.String() {
	case "left", "h":
		m.picker.nudge(-hueStep, 0)
	case "right", "l":
		m.picker.nudge(hueStep, 0)
	case "up", "k":
		m.picker.nudge(0, valueStep)
	case "down", "j":
		m.picker.nudge(0, -valueStep)
	case "c":
		m.ctrl.ToggleExpanded()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		switch {
		case msg.Y == buttonRow && within(msg.X, addColumn, addWidth):
			if err := m.ctrl.AddStop(); err != nil {
				m.err = err
			}
		case msg.Y == buttonRow && within(msg.X, removeLeft, removeWidth):
			if !m.ctrl.RemoveStop() {
				m.status = "a gradient needs at least two stops"
			}
		case msg.Y >= stripTop && msg.Y <= markerRow:
			if index, ok := m.ctrl.MarkerAt(float64(msg.X), m.geometry()); ok {
				m.ctrl.PointerDown(index)
			}
		}

	case tea.MouseActionMotion:
		if m.state.capturing {
			m.ctrl.PointerMove(float64(msg.X), m.geometry())
		}

	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
	return m
}

func within(x, left, width int) bool {
	return x >= left && x < left+width
}

func stripWidthFor(termWidth int) int {
	w := termWidth - 2*stripLeft
	if w > 100 {
		w = 100
	}
	if w < minStripWidth {
		w = minStripWidth
	}
	return w
}
