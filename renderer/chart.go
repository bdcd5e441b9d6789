package renderer

import (
	"fmt"
	"math"

	charts "github.com/vicanso/go-charts/v2"
)

// RenderChart draws the market value trajectory as a PNG line chart, with the
// headline statistics in the subtitle.
func RenderChart(r *Report) ([]byte, error) {
	trajectory := r.Result.Trajectory
	if len(trajectory) == 0 {
		return nil, fmt.Errorf("empty trajectory")
	}

	values := make([]float64, len(trajectory))
	xLabels := make([]string, len(trajectory))
	for i, s := range trajectory {
		values[i] = s.MarketValue.AsFloat()
		if len(trajectory) <= 60 {
			xLabels[i] = s.Day.Format("Jan 02")
		} else {
			xLabels[i] = s.Day.Format("Jan '06")
		}
	}

	yMin, yMax := axisRange(values)

	m := r.Result.Metrics
	title := fmt.Sprintf("%s (%s)", r.Name, r.Symbol)
	subtitle := fmt.Sprintf("Return: %s | Sharpe: %s | Vol: %s | MaxDD: %s",
		m.PercentReturn, num(m.SharpeRatio), ratio(m.AnnualizedVolatility), ratio(m.MaxDrawdown))

	splitNum := 6
	if len(xLabels) <= 30 {
		splitNum = len(xLabels) / 3
		if splitNum < 3 {
			splitNum = 3
		}
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(title+"\n"+subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNum,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering chart: %w", err)
	}
	return p.Bytes()
}

// axisRange pads the observed value range by 5% so the line does not hug the
// chart frame. A flat series still gets a visible band.
func axisRange(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	padding := (max - min) * 0.05
	if padding == 0 {
		padding = max * 0.05
	}
	return min - padding, max + padding
}

func num(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", x)
}

func ratio(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", 100*x)
}
