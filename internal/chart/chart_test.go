package chart

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/Alias1177/RateShift/internal/funds"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestBuildLayout(t *testing.T) {
	history, err := funds.NewStaticSource().Load(context.Background())
	require.NoError(t, err)

	graph, err := Build(history, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, Title, graph.Title)
	require.Len(t, graph.Series, 3)

	axes := map[string]gochart.YAxisType{}
	for _, s := range graph.Series {
		ts, ok := s.(gochart.TimeSeries)
		require.True(t, ok)
		assert.Len(t, ts.XValues, len(history))
		axes[ts.Name] = ts.YAxis
	}
	assert.Equal(t, gochart.YAxisSecondary, axes[RateSeries])
	assert.Equal(t, gochart.YAxisPrimary, axes[StockSeries])
	assert.Equal(t, gochart.YAxisPrimary, axes[LowRiskSeries])
	assert.Len(t, graph.Elements, 1, "legend")
}

func TestPNGBytes(t *testing.T) {
	history, err := funds.NewStaticSource().Load(context.Background())
	require.NoError(t, err)

	img, err := PNGBytes(history, Options{Width: 600, Height: 300})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(img, pngMagic))
}

func TestEmptyHistory(t *testing.T) {
	_, err := PNGBytes(nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestWriteFile(t *testing.T) {
	history, err := funds.NewStaticSource().Load(context.Background())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, WriteFile(path, history, Options{Width: 600, Height: 300}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestWriteFileLeavesNothingOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")

	err := WriteFile(path, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNoHistory)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	history, err := funds.NewStaticSource().Load(context.Background())
	require.NoError(t, err)
	assert.Error(t, WriteFile(filepath.Join(t.TempDir(), "missing", "chart.png"), history, DefaultOptions()))
}

func TestLegendStaysOffTheRateAxis(t *testing.T) {
	history, err := funds.NewStaticSource().Load(context.Background())
	require.NoError(t, err)

	render := func(withLegend bool) image.Image {
		graph, err := Build(history, DefaultOptions())
		require.NoError(t, err)
		if !withLegend {
			graph.Elements = nil
		}
		var buf bytes.Buffer
		require.NoError(t, graph.Render(gochart.PNG, &buf))
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		return img
	}

	with, without := render(true), render(false)

	// the left margin holds only the rate axis, so the legend must not change it
	bounds := with.Bounds()
	for x := bounds.Min.X; x < bounds.Min.X+40; x++ {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			r1, g1, b1, _ := with.At(x, y).RGBA()
			r2, g2, b2, _ := without.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 {
				t.Fatalf("legend drawn over the axis margin at (%d,%d)", x, y)
			}
		}
	}
}
