package binding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
)

func decodeJSON(t *testing.T, text string) any {
	t.Helper()

	var raw any
	require.NoError(t, json.Unmarshal([]byte(text), &raw))
	return raw
}

func decodeYAML(t *testing.T, text string) any {
	t.Helper()

	var raw any
	require.NoError(t, yaml.Unmarshal([]byte(text), &raw))
	return raw
}

func TestParseVariant(t *testing.T) {
	t.Parallel()

	v, err := ParseVariant("")
	require.NoError(t, err)
	require.Equal(t, Object, v)

	v, err = ParseVariant(" List ")
	require.NoError(t, err)
	require.Equal(t, List, v)
	require.Equal(t, "list", v.String())

	_, err = ParseVariant("tuple")
	require.Error(t, err)
}

func TestReadBothVariants(t *testing.T) {
	t.Parallel()

	list := `[{"color":"#ff0000","stop":0},{"color":"#0000ff","stop":1}]`
	object := `{"stops":` + list + `}`

	for _, text := range []string{list, object} {
		stops, substituted := Read(decodeJSON(t, text), Params{Space: colorspace.Hex})
		require.False(t, substituted)
		require.Len(t, stops, 2)
		require.Equal(t, colorspace.FromHex("#ff0000"), stops[0].Color)
		require.Equal(t, 1.0, stops[1].Position)
	}
}

func TestReadNormalizesIntoSpace(t *testing.T) {
	t.Parallel()

	raw := decodeYAML(t, `
stops:
  - color: {r: 255, g: 0, b: 128}
    stop: 0
  - color: "#ffffff"
    stop: 0.6
  - color: {h: 120, s: 100, v: 100}
    stop: 1
`)
	stops, substituted := Read(raw, Params{Space: colorspace.HSV})
	require.False(t, substituted)
	require.Len(t, stops, 3)
	require.Equal(t, colorspace.FromHSV(330, 100, 100), stops[0].Color)
	require.Equal(t, colorspace.FromHSV(0, 0, 100), stops[1].Color)
	require.Equal(t, colorspace.FromHSV(120, 100, 100), stops[2].Color)
	require.NoError(t, stops.Validate())
}

func TestReadSubstitutesDefault(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  any
	}{
		{name: "missing stop field", raw: decodeJSON(t, `[{"color":"#ff0000"},{"color":"#0000ff","stop":1}]`)},
		{name: "partial channels", raw: decodeJSON(t, `[{"color":{"r":1,"g":2},"stop":0},{"color":"#0000ff","stop":1}]`)},
		{name: "single stop", raw: decodeJSON(t, `[{"color":"#ff0000","stop":0}]`)},
		{name: "empty list", raw: []any{}},
		{name: "scalar", raw: 42},
		{name: "nil", raw: nil},
		{name: "malformed hex", raw: decodeJSON(t, `[{"color":"#ff00","stop":0},{"color":"#0000ff","stop":1}]`)},
		{name: "infinite hue", raw: decodeYAML(t, "- color: {h: .inf, s: 100, v: 100}\n  stop: 0\n- color: '#0000ff'\n  stop: 1\n")},
		{name: "nan channel", raw: decodeYAML(t, "- color: {r: .nan, g: 0, b: 0}\n  stop: 0\n- color: '#0000ff'\n  stop: 1\n")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stops, substituted := Read(tc.raw, Params{Space: colorspace.Hex})
			require.True(t, substituted)
			require.True(t, stops.Equal(gradient.Default()))
		})
	}
}

func TestDefaultFollowsSpace(t *testing.T) {
	t.Parallel()

	stops, substituted := Read(nil, Params{Space: colorspace.RGB})
	require.True(t, substituted)
	require.Equal(t, colorspace.FromRGB(0, 0, 0), stops[0].Color)
	require.Equal(t, colorspace.FromRGB(255, 255, 255), stops[1].Color)
}

func TestReadClampsPositions(t *testing.T) {
	t.Parallel()

	raw := decodeJSON(t, `[{"color":"#000000","stop":-0.5},{"color":"#ffffff","stop":3}]`)
	stops, substituted := Read(raw, Params{Space: colorspace.Hex})
	require.False(t, substituted)
	require.Equal(t, 0.0, stops[0].Position)
	require.Equal(t, 1.0, stops[1].Position)
}

func TestReadRejectsNonFinitePositions(t *testing.T) {
	t.Parallel()

	for _, pos := range []string{".nan", ".inf", "-.inf"} {
		raw := decodeYAML(t, "- color: '#000000'\n  stop: "+pos+"\n- color: '#ffffff'\n  stop: 1\n")
		stops, substituted := Read(raw, Params{Space: colorspace.Hex})
		require.True(t, substituted, pos)
		require.True(t, stops.Equal(gradient.Default()), pos)
	}
}

func TestReadWrapsLargeHue(t *testing.T) {
	t.Parallel()

	raw := decodeYAML(t, "- color: {h: 1e18, s: 100, v: 100}\n  stop: 0\n- color: {h: -1e18, s: 100, v: 100}\n  stop: 1\n")
	stops, substituted := Read(raw, Params{Space: colorspace.Hex})
	require.False(t, substituted)

	first, err := colorspace.Convert(colorspace.FromHSV(280, 100, 100), colorspace.Hex)
	require.NoError(t, err)
	last, err := colorspace.Convert(colorspace.FromHSV(80, 100, 100), colorspace.Hex)
	require.NoError(t, err)
	require.Equal(t, first, stops[0].Color)
	require.Equal(t, last, stops[1].Color)
}

func TestAccept(t *testing.T) {
	t.Parallel()

	require.True(t, Accept(decodeJSON(t, `[{"color":"#000","stop":0},{"color":"#fff","stop":1}]`)))
	require.True(t, Accept([]any{}))
	require.True(t, Accept(nil))
	require.True(t, Accept(gradient.Default()))
	require.False(t, Accept(decodeJSON(t, `[{"color":"#000"}]`)))
	require.False(t, Accept(decodeJSON(t, `{"stops":[1,2,3]}`)))
}

func TestWriteShapes(t *testing.T) {
	t.Parallel()

	stops := gradient.Default()

	data, err := json.Marshal(Write(stops, List))
	require.NoError(t, err)
	require.JSONEq(t, `[{"color":"#000000","stop":0},{"color":"#ffffff","stop":1}]`, string(data))

	data, err = json.Marshal(Bound{Stops: stops}.Value(Object))
	require.NoError(t, err)
	require.JSONEq(t, `{"stops":[{"color":"#000000","stop":0},{"color":"#ffffff","stop":1}]}`, string(data))
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	t.Parallel()

	stops := gradient.Stops{
		{Color: colorspace.FromRGB(10, 20, 30), Position: 0},
		{Color: colorspace.FromRGB(200, 100, 50), Position: 0.25},
		{Color: colorspace.FromRGB(0, 0, 0), Position: 1},
	}

	for _, variant := range []Variant{List, Object} {
		data, err := yaml.Marshal(Write(stops, variant))
		require.NoError(t, err)

		got, substituted := Read(decodeYAML(t, string(data)), Params{Space: colorspace.RGB, Variant: variant})
		require.False(t, substituted)
		require.True(t, got.Equal(stops), variant.String())
	}
}

func TestDecodeKeepsValuesAsWritten(t *testing.T) {
	t.Parallel()

	stops, err := Decode(decodeJSON(t, `{"stops": [{"color": "#FFF", "stop": 1.5}, {"color": {"r": 0, "g": 0, "b": 0}, "stop": 0}]}`))
	require.NoError(t, err)
	require.Len(t, stops, 2)
	require.Equal(t, 1.5, stops[0].Position)
	require.Equal(t, colorspace.Hex, stops[0].Color.Space)
	require.Equal(t, colorspace.RGB, stops[1].Color.Space)
	require.Error(t, stops.Validate())

	_, err = Decode("nope")
	require.Error(t, err)

	_, err = Decode([]any{map[string]any{"color": "#fff"}})
	require.ErrorContains(t, err, "item 0")
}
