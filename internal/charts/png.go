package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/AlinaYaremko/lab-3-ad/internal/models"
)

// WeeklyLinePNG renders the weekly series of the chosen parameter as a
// static PNG, for chart export. go-chart needs at least two points to
// draw a continuous series.
func (cg *ChartGenerator) WeeklyLinePNG(w io.Writer, records []models.Record, param models.Parameter) error {
	if len(records) < 2 {
		return fmt.Errorf("need at least 2 records for a PNG chart, have %d", len(records))
	}

	xValues := make([]float64, len(records))
	yValues := make([]float64, len(records))
	ticks := []chart.Tick{}
	for i, rec := range records {
		xValues[i] = float64(i)
		yValues[i] = param.Value(rec)
		if i == 0 || i == len(records)-1 || i%(len(records)/8+1) == 0 {
			ticks = append(ticks, chart.Tick{
				Value: float64(i),
				Label: fmt.Sprintf("%d-W%02d", rec.Year, rec.Week),
			})
		}
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("%s per week", param),
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   70,
				Right:  20,
				Bottom: 60,
			},
		},
		Height: 400,
		Width:  900,
		XAxis: chart.XAxis{
			Style: chart.Style{
				FontSize:            9,
				TextRotationDegrees: 45,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: string(param),
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: string(param),
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 213, G: 0, B: 109, A: 255},
					StrokeWidth: 2,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render PNG chart: %w", err)
	}
	return nil
}
