package core

import (
	c "dashboard/internal/cache"
	"dashboard/internal/configuration"
	"dashboard/internal/models"

	"go.uber.org/zap"
)

// NewCache returns the configured cache, or nil when caching is disabled.
func NewCache(config models.CacheConfiguration) c.ICache {
	var (
		cache c.ICache
		err   error
	)

	switch config.Type {
	case configuration.CacheRedis:
		cache, err = c.NewRedisCache(*config.Redis)
	case configuration.CacheValkey:
		cache, err = c.NewValkeyCache(*config.Valkey)
	default:
		zap.L().Info("Cache disabled, rate limiting is off")
		return nil
	}

	if err != nil {
		zap.L().Fatal("Failed to connect to cache", zap.String("type", config.Type), zap.Error(err))
	}

	return cache
}
