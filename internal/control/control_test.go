package control

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
	"github.com/alexisbeaulieu97/gradedit/internal/reactive"
)

func newController(t *testing.T, stops gradient.Stops, opts Options) (*Controller, *reactive.Value[gradient.Stops]) {
	t.Helper()

	bound := reactive.NewValue(stops, gradient.Stops.Equal)
	c, err := New(bound, opts)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c, bound
}

func hexStops() gradient.Stops {
	return gradient.Stops{
		{Color: colorspace.FromHex("#ff0000"), Position: 0},
		{Color: colorspace.FromHex("#00ff00"), Position: 0.5},
		{Color: colorspace.FromHex("#0000ff"), Position: 1},
	}
}

func countSets(bound *reactive.Value[gradient.Stops]) *int {
	n := 0
	bound.Subscribe(func(gradient.Stops) { n++ })
	return &n
}

func TestNewRejectsShortGradient(t *testing.T) {
	t.Parallel()

	bound := reactive.NewValue(gradient.Stops{{Color: colorspace.FromHex("#000000")}}, nil)
	_, err := New(bound, Options{})
	require.Error(t, err)
}

func TestNewSeedsEditorsFromFirstStop(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})

	require.Equal(t, 0, c.Selection())
	require.Equal(t, 0.0, c.Editor().Value().Get())
	require.Equal(t, "#ff0000", c.Picker().Value().Get().Hex())
	require.Equal(t, 0, c.Displayed().Get())
}

func TestAddStopSamplesRenderedGradient(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, gradient.Default(), Options{Space: colorspace.RGB})
	want := c.Raster().SampleColorAt(0.5)

	require.NoError(t, c.AddStop())

	stops := c.Stops()
	require.Len(t, stops, 3)
	require.Equal(t, 0.5, stops[1].Position)
	require.Equal(t, colorspace.FromRGB(want.R, want.G, want.B), stops[1].Color)
	require.Equal(t, want.R, want.G)
	require.Equal(t, want.G, want.B)
	require.Equal(t, 1, c.Selection())
	require.Equal(t, 1, c.Displayed().Get())
	require.Equal(t, 0.5, c.Editor().Value().Get())
}

func TestAddStopFromLastSelection(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})
	c.Select(2)

	require.NoError(t, c.AddStop())

	stops := c.Stops()
	require.Len(t, stops, 4)
	require.Equal(t, 2, c.Selection())
	require.Equal(t, 0.75, stops[2].Position)
	require.Equal(t, colorspace.Hex, stops[2].Color.Space)
	require.Equal(t, 1.0, stops[3].Position)
}

func TestRemoveStopRefusesAtMinimum(t *testing.T) {
	t.Parallel()

	c, bound := newController(t, gradient.Default(), Options{})
	sets := countSets(bound)

	require.False(t, c.RemoveStop())
	require.Len(t, c.Stops(), 2)
	require.Zero(t, *sets)
}

func TestRemoveLastStopMovesSelectionBack(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})
	c.Select(2)

	require.True(t, c.RemoveStop())
	require.Len(t, c.Stops(), 2)
	require.Equal(t, 1, c.Selection())
	require.Equal(t, 0.5, c.Editor().Value().Get())
	require.Equal(t, "#00ff00", c.Picker().Value().Get().Hex())
}

func TestRemoveMiddleStopKeepsIndex(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})
	c.Select(1)

	require.True(t, c.RemoveStop())
	require.Equal(t, 1, c.Selection())
	require.Equal(t, 1.0, c.Editor().Value().Get())
}

func TestCycleSelectionStopsAtEnds(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})

	c.CycleSelection(gradient.Previous)
	require.Equal(t, 0, c.Selection())

	c.CycleSelection(gradient.Next)
	c.CycleSelection(gradient.Next)
	c.CycleSelection(gradient.Next)
	require.Equal(t, 2, c.Selection())
	require.Equal(t, 2, c.Displayed().Get())
}

func TestDisplayedIndexDrivesSelection(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})
	c.Displayed().Set(1)

	require.Equal(t, 1, c.Selection())
	require.Equal(t, 0.5, c.Position())
}

func TestSelectionSeedDoesNotWriteModel(t *testing.T) {
	t.Parallel()

	c, bound := newController(t, hexStops(), Options{Space: colorspace.Hex})
	sets := countSets(bound)

	c.Select(1)
	c.Select(2)
	c.Select(0)

	require.Zero(t, *sets)
	require.True(t, c.Stops().Equal(hexStops()))
	require.Equal(t, 0.0, c.Editor().Value().Get())
}

func TestEditorWritesThroughOnce(t *testing.T) {
	t.Parallel()

	c, bound := newController(t, hexStops(), Options{Space: colorspace.Hex})
	sets := countSets(bound)
	c.Select(1)

	c.SetPosition(0.3)
	require.Equal(t, 1, *sets)
	require.Equal(t, 0.3, c.Stops()[1].Position)
	require.Equal(t, 0.3, c.Position())

	c.SetPosition(1.7)
	require.Equal(t, 1.0, c.Stops()[1].Position)
	require.Equal(t, colorspace.FromHex("#00ff00"), c.Stops()[1].Color)
}

func TestNudgePosition(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})

	c.NudgePosition(3)
	require.Equal(t, 0.03, c.Stops()[0].Position)

	c.NudgePosition(-10)
	require.Equal(t, 0.0, c.Stops()[0].Position)
}

func TestPickerWritesColorInActiveSpace(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		space colorspace.Space
		want  colorspace.Color
	}{
		{name: "rgb", space: colorspace.RGB, want: colorspace.FromRGB(255, 0, 128)},
		{name: "hsv", space: colorspace.HSV, want: colorspace.FromHSV(330, 100, 100)},
		{name: "hex", space: colorspace.Hex, want: colorspace.FromHex("#ff0080")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stops := gradient.Stops{
				{Color: colorspace.ToExternal(colorspace.UniformFromRGB255(0, 0, 0), tc.space), Position: 0},
				{Color: colorspace.ToExternal(colorspace.UniformFromRGB255(255, 255, 255), tc.space), Position: 1},
			}
			c, _ := newController(t, stops, Options{Space: tc.space})
			c.Select(1)

			c.SetColor(colorspace.UniformFromRGB255(255, 0, 128))
			require.Equal(t, tc.want, c.Stops()[1].Color)
			require.Equal(t, 0.0, c.Stops()[0].Position)
		})
	}
}

func TestEditsRerenderPreview(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, gradient.Default(), Options{Space: colorspace.RGB})
	before, err := c.Raster().Snapshot()
	require.NoError(t, err)

	c.SetColor(colorspace.UniformFromRGB255(255, 0, 0))

	after := c.Snapshot()
	require.NotEqual(t, before, after)
	px := c.Raster().SampleColorAt(0)
	require.Greater(t, px.R, px.G)
}

func TestReplaceClampsSelectionAndReseeds(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, hexStops(), Options{Space: colorspace.Hex})
	c.Select(2)

	replacement := gradient.Stops{
		{Color: colorspace.FromHex("#111111"), Position: 0.1},
		{Color: colorspace.FromHex("#222222"), Position: 0.9},
	}
	c.Replace(replacement)

	require.True(t, c.Stops().Equal(replacement))
	require.Equal(t, 1, c.Selection())
	require.Equal(t, 0.9, c.Editor().Value().Get())
	require.Equal(t, "#222222", c.Picker().Value().Get().Hex())

	c.Replace(gradient.Stops{replacement[0]})
	require.Len(t, c.Stops(), 2)
}

func TestPopupFollowsFoldable(t *testing.T) {
	t.Parallel()

	picker := NewBasicPicker("palette", "hex-input")
	c, _ := newController(t, gradient.Default(), Options{Expanded: true, Picker: picker})
	require.True(t, c.Popup().Shows().Get())

	c.Escape()
	require.False(t, c.Popup().Shows().Get())
	require.False(t, c.Expanded())

	c.ToggleExpanded()
	require.True(t, c.Popup().Shows().Get())
	require.Equal(t, "palette", picker.Focused())

	c.Blur("hex-input")
	require.True(t, c.Popup().Shows().Get())
	c.Blur(ButtonID)
	require.True(t, c.Popup().Shows().Get())
	c.Blur("")
	require.False(t, c.Popup().Shows().Get())
	require.False(t, c.Expanded())
}

func TestEscapeKeepsEdits(t *testing.T) {
	t.Parallel()

	c, _ := newController(t, gradient.Default(), Options{Expanded: true, Space: colorspace.Hex})
	c.SetColor(colorspace.UniformFromRGB255(0, 0, 255))
	c.Escape()

	require.Equal(t, colorspace.FromHex("#0000ff"), c.Stops()[0].Color)
}

func TestCloseDetachesListeners(t *testing.T) {
	t.Parallel()

	bound := reactive.NewValue(gradient.Default(), gradient.Stops.Equal)
	c, err := New(bound, Options{})
	require.NoError(t, err)

	c.Close()
	require.Zero(t, bound.Listeners())

	c.Editor().Value().Set(0.4)
	require.True(t, bound.Get().Equal(gradient.Default()))
}
