package database

import (
	"context"
	"time"

	"dashboard/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Stores holds the connection pools of the configured backing stores.
// A nil field means the store is not configured.
type Stores struct {
	National *gorm.DB
	Sites    *gorm.DB
}

// Configured reports whether at least one store is available.
func (s Stores) Configured() bool {
	return s.National != nil || s.Sites != nil
}

// InitStores opens a pool for every store with a URL. Pools connect lazily,
// so a store that is down at startup stays configured and its queries fail
// with ErrConnection until it comes back. Only a URL that cannot be parsed
// leaves the store nil.
func InitStores(config models.DatabaseConfiguration) Stores {
	var stores Stores

	if config.HasNationalStore() {
		db, err := InitDB(config.URL, config)
		if err != nil {
			zap.L().Error("Invalid national database URL", zap.Error(err))
		} else {
			stores.National = db
			checkReachable(models.StoreNational, db)
		}
	}

	if config.HasSitesStore() {
		db, err := InitDB(config.SitesURL, config)
		if err != nil {
			zap.L().Error("Invalid sites database URL", zap.Error(err))
		} else {
			stores.Sites = db
			checkReachable(models.StoreSites, db)
		}
	}

	if !stores.Configured() {
		zap.L().Warn("No database configured, set DB_URL and/or SITES_DB_URL")
	}

	return stores
}

const startupPingTimeout = 5 * time.Second

// checkReachable only logs: requests report an unreachable store themselves.
func checkReachable(name string, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		zap.L().Warn("Database unreachable at startup", zap.String("store", name), zap.Error(err))
	}
}

func InitDB(dsn string, config models.DatabaseConfiguration) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		return nil, Classify(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(config.ConnMaxLifetimeMinutes) * time.Minute)

	return db, nil
}

// Close releases the pools held by s.
func (s Stores) Close() {
	for _, db := range []*gorm.DB{s.National, s.Sites} {
		if db == nil {
			continue
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// WithSession runs fn on a dedicated connection taken from db's pool. The
// connection goes back to the pool when fn returns, whether it failed or not.
func WithSession(ctx context.Context, db *gorm.DB, fn func(session *gorm.DB) error) error {
	err := db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		return fn(conn.Session(&gorm.Session{NewDB: true}))
	})
	return Classify(err)
}
