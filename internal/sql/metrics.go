package sql

import (
	"time"

	"dashboard/internal/database"
	apierrors "dashboard/internal/errors"
	"dashboard/internal/metrics"
	"dashboard/internal/models"

	"gorm.io/gorm"
)

const metricValueColumns = "metric.name AS metric_name, " +
	"location.gsp_id AS zone_id, " +
	"metric_value.forecast_horizon_minutes AS forecast_horizon_minutes, " +
	"datetime_interval.start_datetime_utc AS interval_start_utc, " +
	"metric_value.value AS value"

// GetMetricByName resolves a metric by its exact name.
func GetMetricByName(db *gorm.DB, name string) (models.MetricSQL, error) {
	var found []models.MetricSQL

	if err := db.Where("name = ?", name).Find(&found).Error; err != nil {
		return models.MetricSQL{}, database.Classify(err)
	}

	if len(found) == 0 {
		return models.MetricSQL{}, apierrors.ErrMetricMissing
	}

	return found[0], nil
}

// GetMetricValues returns the values of one metric for a zone whose interval
// starts within [Start, End], ordered by interval start.
func GetMetricValues(db *gorm.DB, query models.MetricQuery) ([]models.MetricRecord, error) {
	start := time.Now()
	records, err := getMetricValues(db, query)
	metrics.ObserveQuery("metric_values", start, err)
	return records, err
}

func getMetricValues(db *gorm.DB, query models.MetricQuery) ([]models.MetricRecord, error) {
	if query.Start.After(query.End) {
		return nil, apierrors.ErrDateRange
	}

	metric, err := GetMetricByName(db, query.Name)
	if err != nil {
		return nil, err
	}

	tx := db.Model(&models.MetricValueSQL{}).
		Select(metricValueColumns).
		Joins("JOIN metric ON metric.id = metric_value.metric_id").
		Joins("JOIN location ON location.id = metric_value.location_id").
		Joins("JOIN datetime_interval ON datetime_interval.id = metric_value.datetime_interval_id").
		Where("metric_value.metric_id = ?", metric.ID).
		Where("location.gsp_id = ?", query.ZoneID).
		Where("datetime_interval.start_datetime_utc >= ?", query.Start.UTC()).
		Where("datetime_interval.start_datetime_utc <= ?", query.End.UTC())

	if query.ForecastHorizonMinutes != nil {
		tx = tx.Where("metric_value.forecast_horizon_minutes = ?", *query.ForecastHorizonMinutes)
	} else {
		tx = tx.Where("metric_value.forecast_horizon_minutes IS NULL")
	}

	records := []models.MetricRecord{}
	err = tx.Order("datetime_interval.start_datetime_utc ASC").
		Order("metric_value.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	if records == nil {
		records = []models.MetricRecord{}
	}

	return records, nil
}
