package activity

import (
	"dashboard/internal/database"
	apierrors "dashboard/internal/errors"
	"dashboard/internal/models"

	"gorm.io/gorm"
)

// Available lists the configured stores, national first.
func Available(stores database.Stores) []string {
	available := []string{}
	if stores.National != nil {
		available = append(available, models.StoreNational)
	}
	if stores.Sites != nil {
		available = append(available, models.StoreSites)
	}
	return available
}

// Default returns the store used when none is requested, or "" when no
// store is configured.
func Default(stores database.Stores) string {
	if available := Available(stores); len(available) > 0 {
		return available[0]
	}
	return ""
}

// Select returns the store variant for requested along with the pool it
// reads from. An empty requested picks the default store.
func Select(stores database.Stores, requested string) (IActivityStore, *gorm.DB, error) {
	if !stores.Configured() {
		return nil, nil, apierrors.ErrConfiguration
	}

	if requested == "" {
		requested = Default(stores)
	}

	switch requested {
	case models.StoreNational:
		if stores.National == nil {
			return nil, nil, apierrors.ErrConfiguration
		}
		return NewNationalStore(stores.National), stores.National, nil
	case models.StoreSites:
		if stores.Sites == nil {
			return nil, nil, apierrors.ErrConfiguration
		}
		return NewSitesStore(stores.Sites), stores.Sites, nil
	default:
		return nil, nil, apierrors.ErrStore
	}
}
