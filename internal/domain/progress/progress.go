package progress

import (
	"context"
	"time"
)

// CraftRecord is one finished recipe of a simulation session
type CraftRecord struct {
	SessionID string
	Factory   string
	Recipe    string
	SimTime   float64
	CraftedAt time.Time
}

// ProgressRepository stores progress that survives between sessions
type ProgressRepository interface {
	// RocketBuilt reports whether any session ever assembled the rocket
	RocketBuilt(ctx context.Context) (bool, error)
	MarkRocketBuilt(ctx context.Context, at time.Time) error
	Reset(ctx context.Context) error
}

// CraftLogRepository records crafted recipes
type CraftLogRepository interface {
	Record(ctx context.Context, record CraftRecord) error
	ListBySession(ctx context.Context, sessionID string) ([]CraftRecord, error)
	CountByRecipe(ctx context.Context) (map[string]int64, error)
}

// Session is the outcome of one simulation run
type Session struct {
	ID        string
	WorldFile string
	StartedAt time.Time
	EndedAt   *time.Time
	Status    string
	Elapsed   float64
}

// SessionRepository records simulation runs
type SessionRepository interface {
	Start(ctx context.Context, session Session) error
	Finish(ctx context.Context, id, status string, elapsed float64, at time.Time) error
	ListRecent(ctx context.Context, limit int) ([]Session, error)
}
