package activity

import (
	"context"
	"time"

	"dashboard/internal/models"

	"gorm.io/gorm"
)

// IActivityStore reads API usage from one of the backing stores.
type IActivityStore interface {
	Name() string
	LastRequestPerUser(ctx context.Context) ([]models.LastRequestRecord, error)
	RequestsForUser(ctx context.Context, email string, start, end time.Time) ([]models.ApiRequestRecord, error)
	// WithSession returns a copy of the store issuing its queries on session.
	WithSession(session *gorm.DB) IActivityStore
}
