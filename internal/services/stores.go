package services

import (
	"context"

	"dashboard/internal/activity"
	"dashboard/internal/database"
	"dashboard/internal/handlers"
	"dashboard/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StoresService struct {
	Stores database.Stores
}

func (s StoresService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", handlers.GetOneHandler(s.GetStores))
	return r
}

func (s StoresService) GetStores(_ context.Context, _ *zap.Logger) (models.StoresResponse, error) {
	return models.StoresResponse{
		Available: activity.Available(s.Stores),
		Default:   activity.Default(s.Stores),
	}, nil
}
