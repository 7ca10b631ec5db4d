package storage

import (
	"log/slog"

	"github.com/ritrovo/ritrovo/pkg/config"
	"github.com/ritrovo/ritrovo/pkg/model"

	slogGorm "github.com/orandin/slog-gorm"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the postgres connection pool and migrates the schema. The
// pool is built once at startup and handed to repositories; nothing reaches
// for a global. TranslateError is on so duplicate-key violations surface as
// gorm.ErrDuplicatedKey and repositories can turn them into Conflict errors.
func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	databaseConfig := gorm.Config{
		Logger:         slogGorm.New(slogGorm.WithHandler(logger.Handler())),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(c.DSN()), &databaseConfig)
	if err != nil {
		return nil, err
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.Group{},
		&model.Bar{},
		&model.User{},
		&model.Availability{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
