package simulation

import "fmt"

// EventKind names a notable change in the world
type EventKind string

const (
	EventRecipeCrafted  EventKind = "recipe_crafted"
	EventItemDropped    EventKind = "item_dropped"
	EventPartDelivered  EventKind = "part_delivered"
	EventRocketBuilt    EventKind = "rocket_built"
	EventRocketLaunched EventKind = "rocket_launched"
	EventRocketCrashed  EventKind = "rocket_crashed"
	EventMonsterFed     EventKind = "monster_fed"
	EventMonsterDied    EventKind = "monster_died"
	EventDepositHit     EventKind = "deposit_hit"
	EventDepositBroken  EventKind = "deposit_broken"
	EventStatusChanged  EventKind = "status_changed"
)

// Event is a world-level notification stamped with simulated time
type Event struct {
	Time   float64   `json:"time"`
	Kind   EventKind `json:"kind"`
	Source string    `json:"source,omitempty"`
	Item   string    `json:"item,omitempty"`
	Count  uint      `json:"count,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

func (e Event) String() string {
	return fmt.Sprintf("[%.2fs] %s %s %s", e.Time, e.Kind, e.Source, e.Item)
}
