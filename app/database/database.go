package database

import (
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mytheresa/cookbook/app/config"
	"github.com/mytheresa/cookbook/app/logging"
	"github.com/mytheresa/cookbook/models"
)

// Dialector picks the database/sql driver behind the gorm postgres dialect.
func Dialector(cfg config.PostgresConfig) gorm.Dialector {
	if cfg.Driver == config.DriverPq {
		return postgres.New(postgres.Config{
			DriverName: "postgres",
			DSN:        cfg.DSN(),
		})
	}
	return postgres.Open(cfg.DSN())
}

// Open connects to Postgres, routing gorm's SQL log through zap.
func Open(cfg config.PostgresConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(Dialector(cfg), &gorm.Config{
		Logger: logger.New(logging.GormWriter{Log: log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "connect to %s:%d/%s", cfg.Host, cfg.Port, cfg.DB)
	}
	return db, nil
}

// Migrate creates or alters the cookbook tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Ingredient{}); err != nil {
		return errors.Wrap(err, "migrate")
	}
	return nil
}
