package infra

import (
	"fmt"

	"loja/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate so the schema always matches the models.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates/updates all tables. Fornecedor migrates before
// Produto and the entity tables before Venda so the FKs resolve.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Fornecedor{},
		&model.Produto{},
		&model.Cliente{},
		&model.Usuario{},
		&model.Venda{},
	)
}
