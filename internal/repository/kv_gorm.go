package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outing-board-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKeyValueRepository stores settings in the app_settings table through GORM
type GormKeyValueRepository struct {
	db *gorm.DB
}

// Ensure GormKeyValueRepository implements KeyValueRepositoryInterface
var _ KeyValueRepositoryInterface = (*GormKeyValueRepository)(nil)

// NewGormKeyValueRepository creates a new settings repository
func NewGormKeyValueRepository(db *gorm.DB) *GormKeyValueRepository {
	return &GormKeyValueRepository{db: db}
}

// Get retrieves a setting by key
func (r *GormKeyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var setting models.AppSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

// Set creates or replaces a setting
func (r *GormKeyValueRepository) Set(ctx context.Context, key, value string) error {
	setting := models.AppSetting{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// Ping checks the database connection
func (r *GormKeyValueRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool
func (r *GormKeyValueRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
