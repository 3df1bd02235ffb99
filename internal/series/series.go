package series

import (
	"sort"
	"time"

	"dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const ValuePlaces = models.MetricValuePlaces

// RecentLabelLayout formats the dates shown above the recent values.
const RecentLabelLayout = "02/01/06"

// ToXY splits records into parallel interval-start and value slices, with
// values rounded half away from zero to two places.
func ToXY(records []models.MetricRecord) ([]time.Time, []decimal.Decimal) {
	x := make([]time.Time, len(records))
	y := make([]decimal.Decimal, len(records))

	for i, record := range records {
		x[i] = record.IntervalStartUTC
		y[i] = record.Value.Round(ValuePlaces)
	}

	return x, y
}

// LastThree maps the last three values onto day-before-yesterday, yesterday
// and today. Positions before the start of values stay nil.
func LastThree(values []decimal.Decimal) models.DailyValueTriple {
	var slots [3]*decimal.Decimal

	for i := range slots {
		idx := len(values) - len(slots) + i
		if idx < 0 {
			continue
		}
		v := values[idx]
		slots[i] = &v
	}

	return models.DailyValueTriple{
		DayBeforeYesterday: slots[0],
		Yesterday:          slots[1],
		Today:              slots[2],
	}
}

// RecentDayLabels returns the dd/mm/yy labels of the three days before now,
// oldest first.
func RecentDayLabels(now time.Time, loc *time.Location) [3]string {
	local := now.In(loc)
	return [3]string{
		local.AddDate(0, 0, -3).Format(RecentLabelLayout),
		local.AddDate(0, 0, -2).Format(RecentLabelLayout),
		local.AddDate(0, 0, -1).Format(RecentLabelLayout),
	}
}

// ToTable pairs the x and y slices into raw-data rows.
func ToTable(x []time.Time, y []decimal.Decimal) []models.DateValueRow {
	rows := make([]models.DateValueRow, 0, len(x))
	for i := range x {
		rows = append(rows, models.DateValueRow{Date: x[i], Value: y[i]})
	}
	return rows
}

// DailyCounts counts requests per calendar date of CreatedUTC in loc. Only
// dates present in requests are emitted, ascending.
func DailyCounts(requests []models.ApiRequestRecord, loc *time.Location) []models.DailyRequestCount {
	counts := make(map[string]int64)
	for _, request := range requests {
		counts[request.CreatedUTC.In(loc).Format(time.DateOnly)]++
	}

	result := make([]models.DailyRequestCount, 0, len(counts))
	for date, count := range counts {
		result = append(result, models.DailyRequestCount{Date: date, Count: count})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result
}

// RequestRows keeps the timestamp and url columns of requests.
func RequestRows(requests []models.ApiRequestRecord) []models.RequestRow {
	rows := make([]models.RequestRow, 0, len(requests))
	for _, request := range requests {
		rows = append(rows, models.RequestRow{CreatedUTC: request.CreatedUTC, URL: request.URL})
	}
	return rows
}
