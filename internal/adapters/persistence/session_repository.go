package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/outpost-go/internal/domain/progress"
)

// GormSessionRepository implements SessionRepository using GORM
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Start records a new running session
func (r *GormSessionRepository) Start(ctx context.Context, session progress.Session) error {
	status := session.Status
	if status == "" {
		status = "RUNNING"
	}
	model := &SessionModel{
		ID:        session.ID,
		WorldFile: session.WorldFile,
		Status:    status,
		StartedAt: session.StartedAt,
	}
	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return fmt.Errorf("failed to start session: %w", result.Error)
	}
	return nil
}

// Finish stores the outcome of a session
func (r *GormSessionRepository) Finish(ctx context.Context, id, status string, elapsed float64, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   status,
			"elapsed":  elapsed,
			"ended_at": at,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to finish session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// ListRecent returns the latest sessions first
func (r *GormSessionRepository) ListRecent(ctx context.Context, limit int) ([]progress.Session, error) {
	var models []SessionModel
	query := r.db.WithContext(ctx).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if result := query.Find(&models); result.Error != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", result.Error)
	}

	sessions := make([]progress.Session, 0, len(models))
	for _, m := range models {
		sessions = append(sessions, progress.Session{
			ID:        m.ID,
			WorldFile: m.WorldFile,
			StartedAt: m.StartedAt,
			EndedAt:   m.EndedAt,
			Status:    m.Status,
			Elapsed:   m.Elapsed,
		})
	}
	return sessions, nil
}
