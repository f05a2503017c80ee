package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Alias1177/RateShift/models"
)

const Title = "Interest Rate vs Fund Performance in Pakistan"

// Series names shown in the legend
const (
	RateSeries    = "SBP Rate"
	StockSeries   = "Stock Fund Return"
	LowRiskSeries = "Low-Risk Fund Return"
)

var ErrNoHistory = errors.New("no fund history to plot")

var (
	rateColor    = drawing.ColorFromHex("d62728")
	stockColor   = drawing.ColorFromHex("2ca02c")
	lowRiskColor = drawing.ColorFromHex("1f77b4")
	dashed       = []float64{6.0, 4.0}
)

// Options control the image size
type Options struct {
	Width  int
	Height int
}

// DefaultOptions matches a 12x6 inch figure at 100 dpi
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 600}
}

// Build lays out the dual-axis chart: the policy rate on the left axis,
// both fund returns on the right axis, sharing the time axis.
func Build(history []models.FundRecord, opts Options) (*gochart.Chart, error) {
	if len(history) == 0 {
		return nil, ErrNoHistory
	}

	dates := make([]time.Time, len(history))
	rates := make([]float64, len(history))
	stock := make([]float64, len(history))
	lowRisk := make([]float64, len(history))
	for i, r := range history {
		dates[i] = r.Date
		rates[i] = r.InterestRate
		stock[i] = r.StockReturn
		lowRisk[i] = r.LowRiskReturn
	}

	graph := &gochart.Chart{
		Title:  Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: gochart.XAxis{
			Name:           "Date",
			ValueFormatter: gochart.TimeValueFormatterWithFormat("2006-01"),
		},
		// go-chart draws the primary axis on the right and the secondary on the left
		YAxis: gochart.YAxis{
			Name: "Fund Return (%)",
		},
		YAxisSecondary: gochart.YAxis{
			Name:      "Interest Rate (%)",
			NameStyle: gochart.Style{FontColor: rateColor},
			Style:     gochart.Style{FontColor: rateColor},
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    RateSeries,
				YAxis:   gochart.YAxisSecondary,
				XValues: dates,
				YValues: rates,
				Style:   gochart.Style{StrokeColor: rateColor, StrokeWidth: 2},
			},
			gochart.TimeSeries{
				Name:    StockSeries,
				YAxis:   gochart.YAxisPrimary,
				XValues: dates,
				YValues: stock,
				Style:   gochart.Style{StrokeColor: stockColor, StrokeWidth: 1.5, StrokeDashArray: dashed},
			},
			gochart.TimeSeries{
				Name:    LowRiskSeries,
				YAxis:   gochart.YAxisPrimary,
				XValues: dates,
				YValues: lowRisk,
				Style:   gochart.Style{StrokeColor: lowRiskColor, StrokeWidth: 1.5, StrokeDashArray: dashed},
			},
		},
	}
	// Legend draws inside the plot area at its upper left, clear of the rate axis
	graph.Elements = []gochart.Renderable{gochart.Legend(graph)}

	return graph, nil
}

// RenderPNG writes the chart as a PNG image
func RenderPNG(w io.Writer, history []models.FundRecord, opts Options) error {
	graph, err := Build(history, opts)
	if err != nil {
		return err
	}
	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// WriteFile renders the chart to path. A failed render leaves no file behind.
func WriteFile(path string, history []models.FundRecord, opts Options) (err error) {
	img, err := PNGBytes(history, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing chart file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = f.Write(img); err != nil {
		return fmt.Errorf("writing chart file: %w", err)
	}
	return nil
}

// PNGBytes renders the chart into memory
func PNGBytes(history []models.FundRecord, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, history, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
