package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const progressRowID = "outpost"

// GormProgressRepository implements ProgressRepository using GORM
type GormProgressRepository struct {
	db *gorm.DB
}

// NewGormProgressRepository creates a new GORM progress repository
func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{db: db}
}

// RocketBuilt reports whether the rocket was ever assembled
func (r *GormProgressRepository) RocketBuilt(ctx context.Context) (bool, error) {
	var model ProgressModel
	result := r.db.WithContext(ctx).Where("id = ?", progressRowID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load progress: %w", result.Error)
	}
	return model.RocketBuilt, nil
}

// MarkRocketBuilt sets the flag; the first build time is kept
func (r *GormProgressRepository) MarkRocketBuilt(ctx context.Context, at time.Time) error {
	model := ProgressModel{
		ID:          progressRowID,
		RocketBuilt: true,
		BuiltAt:     &at,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"rocket_built": true, "updated_at": time.Now()}),
	}).Create(&model)
	if result.Error != nil {
		return fmt.Errorf("failed to store progress: %w", result.Error)
	}
	return nil
}

// Reset clears all stored progress
func (r *GormProgressRepository) Reset(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("id = ?", progressRowID).Delete(&ProgressModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to reset progress: %w", result.Error)
	}
	return nil
}

// BuiltAt returns when the rocket was first built, nil if never
func (r *GormProgressRepository) BuiltAt(ctx context.Context) (*time.Time, error) {
	var model ProgressModel
	result := r.db.WithContext(ctx).Where("id = ?", progressRowID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load progress: %w", result.Error)
	}
	return model.BuiltAt, nil
}
