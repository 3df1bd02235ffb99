package activity

import (
	"context"
	"time"

	"dashboard/internal/models"

	"gorm.io/gorm"
)

var nationalSchema = storeSchema{
	name:         models.StoreNational,
	userModel:    &models.NationalUserSQL{},
	requestModel: &models.NationalAPIRequestSQL{},
	userTable:    "api_user",
	userKey:      "uuid",
}

// NationalStore reads the national API-usage store (api_user / api_request).
type NationalStore struct {
	db *gorm.DB
}

func NewNationalStore(db *gorm.DB) *NationalStore {
	return &NationalStore{db: db}
}

func (s *NationalStore) Name() string {
	return models.StoreNational
}

func (s *NationalStore) LastRequestPerUser(ctx context.Context) ([]models.LastRequestRecord, error) {
	return lastRequestPerUser(ctx, s.db, nationalSchema)
}

func (s *NationalStore) RequestsForUser(
	ctx context.Context,
	email string,
	start, end time.Time,
) ([]models.ApiRequestRecord, error) {
	return requestsForUser(ctx, s.db, nationalSchema, email, start, end)
}

func (s *NationalStore) WithSession(session *gorm.DB) IActivityStore {
	return &NationalStore{db: session}
}
