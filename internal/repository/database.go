package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"accorcia/internal/config"
	"accorcia/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLRepository persists users, links and visits through GORM
type SQLRepository struct {
	db *gorm.DB
}

// NewSQLRepository opens the configured database and migrates the schema
func NewSQLRepository(cfg *config.DatabaseConfig) (*SQLRepository, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.MySQL.DSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLite.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := NewSQLRepositoryWithDB(db)
	if err := repo.Migrate(); err != nil {
		return nil, err
	}

	log.Info().Str("driver", cfg.Driver).Msg("Database connected successfully")

	return repo, nil
}

// NewSQLRepositoryWithDB wraps an already opened connection
func NewSQLRepositoryWithDB(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// SQLiteDSN enables foreign key enforcement, which SQLite leaves off per connection
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// Migrate creates or updates the tables
func (r *SQLRepository) Migrate() error {
	if err := r.db.AutoMigrate(&model.User{}, &model.Link{}, &model.Visit{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks the database connection
func (r *SQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
