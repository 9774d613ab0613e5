package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/gradedit/internal/binding"
	"github.com/alexisbeaulieu97/gradedit/internal/config"
	"github.com/alexisbeaulieu97/gradedit/internal/control"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
	"github.com/alexisbeaulieu97/gradedit/internal/logger"
	"github.com/alexisbeaulieu97/gradedit/internal/reactive"
	"github.com/alexisbeaulieu97/gradedit/internal/store"
)

const (
	defaultStripWidth = 60
	minStripWidth     = 10

	// Screen layout, in rows and columns from the top-left corner.
	buttonRow   = 1
	stripTop    = 2
	stripRows   = 2
	markerRow   = stripTop + stripRows
	stripLeft   = 2
	addColumn   = stripLeft
	addWidth    = 3
	removeLeft  = stripLeft + addWidth + 1
	removeWidth = 3
)

// Options configures the editor model.
type Options struct {
	Document *store.Document
	// Raw is the decoded document content; nil selects the default gradient.
	Raw    any
	Config *config.Config
	Logger *logger.Logger
}

// session holds state shared by every copy of the model. At most one save
// runs at a time; edits made meanwhile leave dirty set and are written once
// the running save reports back.
type session struct {
	dirty     bool
	saving    bool
	capturing bool
}

func (s *session) Capture() func() {
	s.capturing = true
	return func() { s.capturing = false }
}

// Model is the Bubbletea state for the interactive gradient editor.
type Model struct {
	ctrl    *control.Controller
	doc     *store.Document
	params  binding.Params
	variant binding.Variant
	log     *logger.Logger
	picker  *picker
	state   *session

	keys keyMap
	help help.Model

	width      int
	height     int
	stripWidth int

	status   string
	err      error
	quitting bool
}

// NewModel reads the bound value and wires a controller around it.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	params := cfg.Params()

	stops, substituted := binding.Read(opts.Raw, params)
	if substituted {
		opts.Logger.Debug("document is not a gradient, using default", "raw", fmt.Sprintf("%v", opts.Raw))
	}

	state := &session{}
	p := newPicker()
	width, height := cfg.CanvasSize()

	bound := reactive.NewValue(stops, gradient.Stops.Equal)
	ctrl, err := control.New(bound, control.Options{
		Space:    params.Space,
		Expanded: params.Expanded,
		Width:    width,
		Height:   height,
		Picker:   p,
		Capturer: state,
		Logger:   opts.Logger,
	})
	if err != nil {
		return Model{}, fmt.Errorf("create controller: %w", err)
	}
	bound.Subscribe(func(gradient.Stops) { state.dirty = true })
	ctrl.Popup().Shows().Subscribe(func(shows bool) {
		if !shows {
			p.Focus("")
		}
	})
	p.input.SetValue(p.value.Get().Hex())

	m := Model{
		ctrl:       ctrl,
		doc:        opts.Document,
		params:     params,
		variant:    params.Variant,
		log:        opts.Logger,
		picker:     p,
		state:      state,
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
		stripWidth: defaultStripWidth,
	}
	if substituted && opts.Raw != nil {
		m.status = "document did not describe a gradient; started from the default"
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Controller exposes the underlying controller.
func (m Model) Controller() *control.Controller {
	return m.ctrl
}

// Bound returns the current value in its serialized shape.
func (m Model) Bound() binding.Bound {
	return binding.Bound{Stops: m.ctrl.Stops(), Gradient: m.ctrl.Snapshot}
}

// Close releases the controller.
func (m Model) Close() {
	m.ctrl.Close()
}

func (m Model) geometry() control.Geometry {
	return control.Geometry{Left: stripLeft, Width: float64(m.stripWidth - 1)}
}

func (m Model) saveCmd() tea.Cmd {
	if m.doc == nil {
		return nil
	}
	doc := m.doc
	value := m.Bound().Value(m.variant)
	return func() tea.Msg {
		return savedMsg{Err: doc.Save(value)}
	}
}
