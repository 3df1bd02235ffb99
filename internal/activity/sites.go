package activity

import (
	"context"
	"time"

	"dashboard/internal/models"

	"gorm.io/gorm"
)

var sitesSchema = storeSchema{
	name:         models.StoreSites,
	userModel:    &models.SitesUserSQL{},
	requestModel: &models.SitesAPIRequestSQL{},
	userTable:    "users",
	userKey:      "user_uuid",
}

// SitesStore reads the sites API-usage store (users / api_request).
type SitesStore struct {
	db *gorm.DB
}

func NewSitesStore(db *gorm.DB) *SitesStore {
	return &SitesStore{db: db}
}

func (s *SitesStore) Name() string {
	return models.StoreSites
}

func (s *SitesStore) LastRequestPerUser(ctx context.Context) ([]models.LastRequestRecord, error) {
	return lastRequestPerUser(ctx, s.db, sitesSchema)
}

func (s *SitesStore) RequestsForUser(
	ctx context.Context,
	email string,
	start, end time.Time,
) ([]models.ApiRequestRecord, error) {
	return requestsForUser(ctx, s.db, sitesSchema, email, start, end)
}

func (s *SitesStore) WithSession(session *gorm.DB) IActivityStore {
	return &SitesStore{db: session}
}
