package persistence

import (
	"time"
)

// ProgressModel represents the progress table; a single row with id progressRowID
type ProgressModel struct {
	ID          string     `gorm:"column:id;primaryKey"`
	RocketBuilt bool       `gorm:"column:rocket_built;not null;default:false"`
	BuiltAt     *time.Time `gorm:"column:built_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (ProgressModel) TableName() string {
	return "progress"
}

// SessionModel represents the sessions table
type SessionModel struct {
	ID        string     `gorm:"column:id;primaryKey;not null"`
	WorldFile string     `gorm:"column:world_file"`
	Status    string     `gorm:"column:status;not null;default:'RUNNING'"`
	Elapsed   float64    `gorm:"column:elapsed;not null;default:0"`
	StartedAt time.Time  `gorm:"column:started_at;not null;index"`
	EndedAt   *time.Time `gorm:"column:ended_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

// CraftLogModel represents the craft_logs table
type CraftLogModel struct {
	ID        int           `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID string        `gorm:"column:session_id;not null;index"`
	Session   *SessionModel `gorm:"foreignKey:SessionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Factory   string        `gorm:"column:factory;not null"`
	Recipe    string        `gorm:"column:recipe;not null"`
	SimTime   float64       `gorm:"column:sim_time;not null"`
	CraftedAt time.Time     `gorm:"column:crafted_at;not null"`
}

func (CraftLogModel) TableName() string {
	return "craft_logs"
}
