package progress

import (
	"context"

	"github.com/andrescamacho/outpost-go/internal/application/logging"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	domain "github.com/andrescamacho/outpost-go/internal/domain/progress"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// Recorder persists world events that outlive a session: the rocket-built
// flag and the craft log.
//
// Repository failures are logged and never stop the simulation.
type Recorder struct {
	sessionID    string
	progressRepo domain.ProgressRepository
	craftLogRepo domain.CraftLogRepository
	clock        shared.Clock
}

// NewRecorder creates a recorder; either repository may be nil
func NewRecorder(
	sessionID string,
	progressRepo domain.ProgressRepository,
	craftLogRepo domain.CraftLogRepository,
	clock shared.Clock,
) *Recorder {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Recorder{
		sessionID:    sessionID,
		progressRepo: progressRepo,
		craftLogRepo: craftLogRepo,
		clock:        clock,
	}
}

// Attach subscribes the recorder to world events
func (r *Recorder) Attach(ctx context.Context, world *simulation.World) shared.ListenerID {
	return world.OnEvent.Add(func(e simulation.Event) {
		r.Handle(ctx, e)
	})
}

// Handle persists a single event
func (r *Recorder) Handle(ctx context.Context, e simulation.Event) {
	logger := logging.LoggerFromContext(ctx)

	switch e.Kind {
	case simulation.EventRecipeCrafted:
		if r.craftLogRepo == nil {
			return
		}
		record := domain.CraftRecord{
			SessionID: r.sessionID,
			Factory:   e.Source,
			Recipe:    e.Item,
			SimTime:   e.Time,
			CraftedAt: r.clock.Now(),
		}
		if err := r.craftLogRepo.Record(ctx, record); err != nil {
			logger.Log("ERROR", "Failed to record craft", map[string]interface{}{
				"factory": e.Source,
				"recipe":  e.Item,
				"error":   err.Error(),
			})
		}
	case simulation.EventRocketBuilt:
		if r.progressRepo == nil {
			return
		}
		if err := r.progressRepo.MarkRocketBuilt(ctx, r.clock.Now()); err != nil {
			logger.Log("ERROR", "Failed to store rocket progress", map[string]interface{}{
				"error": err.Error(),
			})
			return
		}
		logger.Log("INFO", "Rocket progress stored", map[string]interface{}{
			"session": r.sessionID,
		})
	}
}
