package activity

import (
	"context"
	"time"

	"dashboard/internal/database"
	apierrors "dashboard/internal/errors"
	"dashboard/internal/metrics"
	"dashboard/internal/models"

	"gorm.io/gorm"
)

// storeSchema names the user table and the join key of an API-usage store.
// The request table is "api_request" in both stores.
type storeSchema struct {
	name         string
	userModel    any
	requestModel any
	userTable    string
	userKey      string
}

func (s storeSchema) join() string {
	return "JOIN " + s.userTable + " ON " + s.userTable + "." + s.userKey + " = api_request.user_uuid"
}

func lastRequestPerUser(ctx context.Context, db *gorm.DB, schema storeSchema) ([]models.LastRequestRecord, error) {
	start := time.Now()

	records := []models.LastRequestRecord{}
	err := db.WithContext(ctx).
		Model(schema.requestModel).
		Select(schema.userTable + ".email AS email, MAX(api_request.created_utc) AS last_created_utc").
		Joins(schema.join()).
		Group(schema.userTable + ".email").
		Order("last_created_utc DESC").
		Order(schema.userTable + ".email ASC").
		Scan(&records).Error

	err = database.Classify(err)
	metrics.ObserveQuery(schema.name+"_last_request_per_user", start, err)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.LastRequestRecord{}
	}
	return records, nil
}

func requestsForUser(
	ctx context.Context,
	db *gorm.DB,
	schema storeSchema,
	email string,
	start, end time.Time,
) ([]models.ApiRequestRecord, error) {
	began := time.Now()
	records, err := queryRequestsForUser(db.WithContext(ctx), schema, email, start, end)
	metrics.ObserveQuery(schema.name+"_requests_for_user", began, err)
	return records, err
}

func queryRequestsForUser(
	db *gorm.DB,
	schema storeSchema,
	email string,
	start, end time.Time,
) ([]models.ApiRequestRecord, error) {
	if start.After(end) {
		return nil, apierrors.ErrDateRange
	}

	var users int64
	if err := db.Model(schema.userModel).Where("email = ?", email).Count(&users).Error; err != nil {
		return nil, database.Classify(err)
	}
	if users == 0 {
		return nil, apierrors.ErrUserMissing
	}

	records := []models.ApiRequestRecord{}
	err := db.Model(schema.requestModel).
		Select(schema.userTable + ".email AS email, api_request.created_utc AS created_utc, api_request.url AS url").
		Joins(schema.join()).
		Where(schema.userTable+".email = ?", email).
		Where("api_request.created_utc >= ?", start.UTC()).
		Where("api_request.created_utc <= ?", end.UTC()).
		Order("api_request.created_utc ASC").
		Order("api_request.url ASC").
		Scan(&records).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	if records == nil {
		records = []models.ApiRequestRecord{}
	}
	return records, nil
}
