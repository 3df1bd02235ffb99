package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Metric names as stored in the forecasting-metrics database.
const (
	MetricDailyLatestMAE  = "Daily Latest MAE"
	MetricDailyLatestRMSE = "Daily Latest RMSE"
	MetricAdjusterSuffix  = " with adjuster"
)

// MetricSQL maps the "metric" table.
type MetricSQL struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
}

func (MetricSQL) TableName() string { return "metric" }

// MetricValueSQL maps the "metric_value" table. Zones and intervals are read
// through joins on "location" and "datetime_interval".
type MetricValueSQL struct {
	ID                     int64           `gorm:"primaryKey"`
	Value                  decimal.Decimal `gorm:"column:value"`
	NumberOfDataPoints     int             `gorm:"column:number_of_data_points"`
	ForecastHorizonMinutes *int            `gorm:"column:forecast_horizon_minutes"`
	MetricID               int64           `gorm:"column:metric_id"`
	LocationID             int64           `gorm:"column:location_id"`
	DatetimeIntervalID     int64           `gorm:"column:datetime_interval_id"`
}

func (MetricValueSQL) TableName() string { return "metric_value" }

// MetricRecord is one metric value joined with its metric, zone and interval.
type MetricRecord struct {
	MetricName             string          `gorm:"column:metric_name"              json:"metric_name"`
	ZoneID                 int             `gorm:"column:zone_id"                  json:"zone_id"`
	ForecastHorizonMinutes *int            `gorm:"column:forecast_horizon_minutes" json:"forecast_horizon_minutes,omitempty"`
	IntervalStartUTC       time.Time       `gorm:"column:interval_start_utc"       json:"interval_start_utc"`
	Value                  decimal.Decimal `gorm:"column:value"                    json:"value"`
}

// MetricQuery selects metric values. A nil ForecastHorizonMinutes selects the
// aggregate rows that carry no horizon.
type MetricQuery struct {
	Name                   string
	ZoneID                 int
	Start                  time.Time
	End                    time.Time
	ForecastHorizonMinutes *int
}

// MetricValuePlaces is the number of decimal places metric values are
// rounded to and written with.
const MetricValuePlaces = 2

func fixedValue(v *decimal.Decimal) *string {
	if v == nil {
		return nil
	}
	s := v.StringFixed(MetricValuePlaces)
	return &s
}

// DailyValueTriple holds the last three values of a series; nil marks a missing position.
type DailyValueTriple struct {
	DayBeforeYesterday *decimal.Decimal `json:"day_before_yesterday"`
	Yesterday          *decimal.Decimal `json:"yesterday"`
	Today              *decimal.Decimal `json:"today"`
}

// MarshalJSON writes every present value with exactly two decimal places.
func (t DailyValueTriple) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DayBeforeYesterday *string `json:"day_before_yesterday"`
		Yesterday          *string `json:"yesterday"`
		Today              *string `json:"today"`
	}{
		DayBeforeYesterday: fixedValue(t.DayBeforeYesterday),
		Yesterday:          fixedValue(t.Yesterday),
		Today:              fixedValue(t.Today),
	})
}

// DateValueRow is a row of the raw-data tables.
type DateValueRow struct {
	Date  time.Time       `json:"datetime_utc"`
	Value decimal.Decimal `json:"value"`
}

func (r DateValueRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date  time.Time `json:"datetime_utc"`
		Value *string   `json:"value"`
	}{
		Date:  r.Date,
		Value: fixedValue(&r.Value),
	})
}

// MetricNames returns the MAE and RMSE metric names for the adjuster toggle.
func MetricNames(adjusted bool) (mae string, rmse string) {
	mae, rmse = MetricDailyLatestMAE, MetricDailyLatestRMSE
	if adjusted {
		mae += MetricAdjusterSuffix
		rmse += MetricAdjusterSuffix
	}
	return mae, rmse
}
