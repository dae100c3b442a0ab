package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/AlinaYaremko/lab-3-ad/internal/models"
)

// ChartGenerator renders the dashboard's embeddable chart fragments.
type ChartGenerator struct{}

// NewChartGenerator creates a new chart generator
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// WeeklyLine renders a line chart of the chosen parameter over the
// filtered records, one point per (year, week).
func (cg *ChartGenerator) WeeklyLine(records []models.Record, param models.Parameter, region string) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no records to chart")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s по тижнях", param),
			Subtitle: region,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Тиждень",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: string(param),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xAxis := make([]string, len(records))
	points := make([]opts.LineData, len(records))
	for i, rec := range records {
		xAxis[i] = fmt.Sprintf("%d-W%02d", rec.Year, rec.Week)
		points[i] = opts.LineData{Value: param.Value(rec)}
	}

	line.SetXAxis(xAxis).
		AddSeries(string(param), points).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render weekly line chart: %w", err)
	}
	return buf.String(), nil
}

// YearlyBar renders a bar chart of per-year means for the comparison
// view.
func (cg *ChartGenerator) YearlyBar(means []models.YearMean, param models.Parameter, region string) (string, error) {
	if len(means) == 0 {
		return "", fmt.Errorf("no yearly means to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Середній %s по роках", param),
			Subtitle: region,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Рік",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: string(param),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xAxis := make([]string, len(means))
	bars := make([]opts.BarData, len(means))
	for i, ym := range means {
		xAxis[i] = fmt.Sprintf("%d", ym.Year)
		bars[i] = opts.BarData{Value: ym.Mean}
	}

	bar.SetXAxis(xAxis).AddSeries(string(param), bars)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render yearly bar chart: %w", err)
	}
	return buf.String(), nil
}
