package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/outpost-go/internal/domain/progress"
)

// GormCraftLogRepository implements CraftLogRepository using GORM
type GormCraftLogRepository struct {
	db *gorm.DB
}

// NewGormCraftLogRepository creates a new GORM craft log repository
func NewGormCraftLogRepository(db *gorm.DB) *GormCraftLogRepository {
	return &GormCraftLogRepository{db: db}
}

// Record appends a crafted recipe
func (r *GormCraftLogRepository) Record(ctx context.Context, record progress.CraftRecord) error {
	model := &CraftLogModel{
		SessionID: record.SessionID,
		Factory:   record.Factory,
		Recipe:    record.Recipe,
		SimTime:   record.SimTime,
		CraftedAt: record.CraftedAt,
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to record craft: %w", result.Error)
	}
	return nil
}

// ListBySession returns a session's crafts in simulated time order
func (r *GormCraftLogRepository) ListBySession(ctx context.Context, sessionID string) ([]progress.CraftRecord, error) {
	var models []CraftLogModel
	result := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("sim_time ASC, id ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list crafts: %w", result.Error)
	}

	records := make([]progress.CraftRecord, 0, len(models))
	for _, m := range models {
		records = append(records, progress.CraftRecord{
			SessionID: m.SessionID,
			Factory:   m.Factory,
			Recipe:    m.Recipe,
			SimTime:   m.SimTime,
			CraftedAt: m.CraftedAt,
		})
	}
	return records, nil
}

// CountByRecipe totals crafts per recipe across all sessions
func (r *GormCraftLogRepository) CountByRecipe(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Recipe string
		Total  int64
	}
	result := r.db.WithContext(ctx).
		Model(&CraftLogModel{}).
		Select("recipe, COUNT(*) AS total").
		Group("recipe").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count crafts: %w", result.Error)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Recipe] = row.Total
	}
	return counts, nil
}
