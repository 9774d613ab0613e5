package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/gradedit/internal/colorspace"
	"github.com/alexisbeaulieu97/gradedit/internal/gradient"
)

func rendered(t *testing.T, stops gradient.Stops) *Rasterizer {
	t.Helper()

	r := New(0, 0)
	require.NoError(t, r.Render(stops))
	return r
}

func TestNewDefaultsSize(t *testing.T) {
	t.Parallel()

	r := New(0, -3)
	require.Equal(t, DefaultWidth, r.Width())
	require.Equal(t, DefaultHeight, r.Height())

	r = New(40, 4)
	require.Equal(t, 40, r.Width())
	require.Equal(t, 4, r.Height())
}

func TestRenderBlackToWhiteIsMonotonicGray(t *testing.T) {
	t.Parallel()

	r := rendered(t, gradient.Default())
	pixels := r.Pixels()
	require.Len(t, pixels, DefaultWidth)

	for i, px := range pixels {
		require.Equal(t, px.R, px.G, "pixel %d", i)
		require.Equal(t, px.G, px.B, "pixel %d", i)
		if i > 0 {
			require.GreaterOrEqual(t, px.R, pixels[i-1].R, "pixel %d", i)
		}
	}
	require.Less(t, pixels[0].R, pixels[len(pixels)-1].R)
}

func TestSampleColorAtMatchesPixels(t *testing.T) {
	t.Parallel()

	r := rendered(t, gradient.Default())
	pixels := r.Pixels()

	mid := r.SampleColorAt(0.5)
	require.Equal(t, pixels[75], mid)
	require.Equal(t, mid.R, mid.G)
	require.Equal(t, mid.G, mid.B)
	require.Greater(t, mid.R, 0)
	require.Less(t, mid.R, 255)

	require.Equal(t, pixels[0], r.SampleColorAt(0))
	require.Equal(t, pixels[DefaultWidth-1], r.SampleColorAt(1))
	require.Equal(t, pixels[DefaultWidth-1], r.SampleColorAt(3))
	require.Equal(t, pixels[0], r.SampleColorAt(-1))
}

func TestRenderBlendsInLinearLight(t *testing.T) {
	t.Parallel()

	mid := rendered(t, gradient.Default()).SampleColorAt(0.5)
	require.InDelta(t, 188, mid.R, 3)

	// A quarter of the way in is still well above a gamma-space 64.
	quarter := rendered(t, gradient.Default()).SampleColorAt(0.25)
	require.InDelta(t, 137, quarter.R, 4)
}

func TestRenderSolidGradient(t *testing.T) {
	t.Parallel()

	stops := gradient.Stops{
		{Color: colorspace.FromHex("#ff0000"), Position: 0},
		{Color: colorspace.FromHex("#ff0000"), Position: 1},
	}
	r := rendered(t, stops)

	for _, pos := range []float64{0, 0.25, 0.5, 0.99} {
		px := r.SampleColorAt(pos)
		require.InDelta(t, 255, px.R, 1)
		require.InDelta(t, 0, px.G, 1)
		require.InDelta(t, 0, px.B, 1)
	}
}

func TestRenderAcceptsEveryRepresentation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		stops gradient.Stops
	}{
		{name: "rgb", stops: gradient.Stops{
			{Color: colorspace.FromRGB(0, 0, 255), Position: 0},
			{Color: colorspace.FromRGB(0, 0, 255), Position: 1},
		}},
		{name: "hsv", stops: gradient.Stops{
			{Color: colorspace.FromHSV(240, 100, 100), Position: 0},
			{Color: colorspace.FromHSV(240, 100, 100), Position: 1},
		}},
		{name: "hex shorthand", stops: gradient.Stops{
			{Color: colorspace.FromHex("#00f"), Position: 0},
			{Color: colorspace.FromHex("#00f"), Position: 1},
		}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			px := rendered(t, tc.stops).SampleColorAt(0.5)
			require.InDelta(t, 0, px.R, 1)
			require.InDelta(t, 0, px.G, 1)
			require.InDelta(t, 255, px.B, 1)
		})
	}
}

func TestRenderRejectsMalformedHex(t *testing.T) {
	t.Parallel()

	r := New(0, 0)
	err := r.Render(gradient.Stops{
		{Color: colorspace.FromHex("#12"), Position: 0},
		{Color: colorspace.FromHex("#ffffff"), Position: 1},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "stop 0")
}

func TestSnapshotIsCachedUntilRender(t *testing.T) {
	t.Parallel()

	r := rendered(t, gradient.Default())

	first, err := r.Snapshot()
	require.NoError(t, err)
	require.Contains(t, first, "data:image/png;base64,")

	second, err := r.Snapshot()
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.NoError(t, r.Render(gradient.Default()))
	third, err := r.Snapshot()
	require.NoError(t, err)
	require.Equal(t, first, third)

	require.NoError(t, r.Render(gradient.Stops{
		{Color: colorspace.FromHex("#ff0000"), Position: 0},
		{Color: colorspace.FromHex("#0000ff"), Position: 1},
	}))
	fourth, err := r.Snapshot()
	require.NoError(t, err)
	require.NotEqual(t, first, fourth)
}

func TestSnapshotDecodesToSurface(t *testing.T) {
	t.Parallel()

	r := rendered(t, gradient.Default())
	url, err := r.Snapshot()
	require.NoError(t, err)

	data, err := DecodeSnapshot(url)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, DefaultWidth, img.Bounds().Dx())
	require.Equal(t, DefaultHeight, img.Bounds().Dy())

	_, err = DecodeSnapshot("data:text/plain,hello")
	require.Error(t, err)
}
