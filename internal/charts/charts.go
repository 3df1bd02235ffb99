package charts

import (
	"fmt"
	"time"

	"dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const legendTitle = "Chart Legend"

const (
	ColorMAEBar   = "#FFAC5F"
	ColorTotalMAE = "#FFD053"
)

// Palette colors the horizon series in selection order.
var Palette = []string{
	"#9EC8FA",
	"#9AA1F9",
	"#FFAC5F",
	"#9F973A",
	"#7BCDF3",
	"#086788",
	"#63BCAF",
	"#4C9A8E",
}

// HorizonColor returns the color of the i-th selected horizon. Indexes past
// the palette wrap around.
func HorizonColor(i int) string {
	return Palette[i%len(Palette)]
}

// HorizonSeries is the MAE series of one forecast horizon.
type HorizonSeries struct {
	Horizon int
	X       []time.Time
	Y       []decimal.Decimal
}

// Series is a plain x/y series.
type Series struct {
	X []time.Time
	Y []decimal.Decimal
}

func HorizonName(horizon int) string {
	return fmt.Sprintf("%d-minute horizon", horizon)
}

func times(values []time.Time) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

func numbers(values []decimal.Decimal) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

// MAEBar charts the daily MAE as bars.
func MAEBar(x []time.Time, y []decimal.Decimal) models.Chart {
	return models.Chart{
		Title:      "Nowcasting MAE",
		XAxisTitle: "Date",
		YAxisTitle: "MAE (MW)",
		Traces: []models.Trace{
			{
				Name:  "MAE",
				Type:  models.TraceTypeBar,
				Color: ColorMAEBar,
				X:     times(x),
				Y:     numbers(y),
			},
		},
	}
}

// MAEByHorizon draws the total MAE line followed by one line per horizon.
func MAEByHorizon(total Series, horizons []HorizonSeries) models.Chart {
	traces := make([]models.Trace, 0, len(horizons)+1)
	traces = append(traces, models.Trace{
		Name:  "Daily Total MAE",
		Type:  models.TraceTypeScatter,
		Mode:  models.TraceModeLines,
		Color: ColorTotalMAE,
		X:     times(total.X),
		Y:     numbers(total.Y),
	})

	for i, h := range horizons {
		traces = append(traces, models.Trace{
			Name:  HorizonName(h.Horizon),
			Type:  models.TraceTypeScatter,
			Mode:  models.TraceModeLines,
			Color: HorizonColor(i),
			X:     times(h.X),
			Y:     numbers(h.Y),
		})
	}

	return models.Chart{
		Title:       "Nowcasting MAE by Forecast Horizon (see sidebar)",
		XAxisTitle:  "Date",
		YAxisTitle:  "MAE (MW)",
		LegendTitle: legendTitle,
		Traces:      traces,
	}
}

// MAEHorizonScatter plots one marker series per horizon with MAE on the x
// axis and the date on the y axis.
func MAEHorizonScatter(horizons []HorizonSeries) models.Chart {
	traces := make([]models.Trace, 0, len(horizons))
	for i, h := range horizons {
		traces = append(traces, models.Trace{
			Name:  HorizonName(h.Horizon),
			Type:  models.TraceTypeScatter,
			Mode:  models.TraceModeMarkers,
			Color: HorizonColor(i),
			X:     numbers(h.Y),
			Y:     times(h.X),
		})
	}

	return models.Chart{
		Title:       "Nowcasting MAE by Date and Forecast Horizon",
		XAxisTitle:  "MAE (MW)",
		YAxisTitle:  "Date",
		LegendTitle: legendTitle,
		Traces:      traces,
	}
}

func MAEvsRMSE(mae, rmse Series) models.Chart {
	return models.Chart{
		Title:       "Nowcasting MAE with RMSE for Comparison",
		XAxisTitle:  "Date",
		YAxisTitle:  "Error Value (MW)",
		LegendTitle: legendTitle,
		Traces: []models.Trace{
			{
				Name:  "MAE",
				Type:  models.TraceTypeScatter,
				Mode:  models.TraceModeLines,
				Color: ColorTotalMAE,
				X:     times(mae.X),
				Y:     numbers(mae.Y),
			},
			{
				Name:  "RMSE",
				Type:  models.TraceTypeScatter,
				Mode:  models.TraceModeLines,
				Color: Palette[0],
				X:     times(rmse.X),
				Y:     numbers(rmse.Y),
			},
		},
	}
}

// APIRequests charts the daily request counts of one user with the x axis
// pinned to [start, end].
func APIRequests(email string, counts []models.DailyRequestCount, start, end time.Time) models.Chart {
	x := make([]any, len(counts))
	y := make([]any, len(counts))
	for i, c := range counts {
		x[i] = c.Date
		y[i] = c.Count
	}

	return models.Chart{
		Title:      "API requests for " + email,
		XAxisTitle: "Date",
		YAxisTitle: "Requests",
		XRange:     []any{start.Format(time.DateOnly), end.Format(time.DateOnly)},
		Traces: []models.Trace{
			{
				Name:  "Daily requests",
				Type:  models.TraceTypeBar,
				Color: Palette[0],
				X:     x,
				Y:     y,
			},
		},
	}
}
