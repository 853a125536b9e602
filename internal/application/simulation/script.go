package simulation

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/outpost-go/internal/application/logging"
)

// ScriptAction names what a scripted event does
type ScriptAction string

const (
	ActionDeposit      ScriptAction = "deposit"
	ActionInteract     ScriptAction = "interact"
	ActionCraft        ScriptAction = "craft"
	ActionSelectRecipe ScriptAction = "select_recipe"
	ActionHit          ScriptAction = "hit"
	ActionLand         ScriptAction = "land"
	ActionCollide      ScriptAction = "collide"
	ActionGrab         ScriptAction = "grab"
	ActionRelease      ScriptAction = "release"
)

// ScriptEvent is a player action applied once simulated time reaches At
type ScriptEvent struct {
	At     float64
	Action ScriptAction
	Target string
	Intake string
	Item   string
	Count  uint
	Index  int
}

// SortScript orders events by time, keeping the given order for ties
func SortScript(events []ScriptEvent) []ScriptEvent {
	sorted := append([]ScriptEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].At < sorted[j].At
	})
	return sorted
}

// Apply performs a scripted action against the world
func (w *World) Apply(ctx context.Context, event ScriptEvent) error {
	logger := logging.LoggerFromContext(ctx)
	metadata := map[string]interface{}{
		"time":   w.elapsed,
		"action": string(event.Action),
		"target": event.Target,
	}

	var (
		ok  bool
		err error
	)

	switch event.Action {
	case ActionDeposit:
		count := event.Count
		if count == 0 {
			count = 1
		}
		var accepted uint
		accepted, err = w.Deposit(event.Target, event.Intake, event.Item, count)
		ok = accepted > 0
		metadata["item"] = event.Item
		metadata["requested"] = count
		metadata["accepted"] = accepted
	case ActionInteract:
		ok, err = w.Interact(event.Target)
	case ActionCraft:
		ok, err = w.Craft(event.Target)
	case ActionSelectRecipe:
		var selected int
		selected, err = w.SelectRecipe(event.Target, event.Index)
		ok = selected >= 0
		metadata["selected"] = selected
	case ActionHit:
		ok, err = w.Hit(event.Target)
	case ActionLand:
		ok = w.LandRocket()
	case ActionCollide:
		err = w.CollideRocket()
		ok = err == nil
	case ActionGrab:
		w.player.Grab(event.Item)
		ok = true
	case ActionRelease:
		w.player.ReleaseGrab()
		ok = true
	default:
		return fmt.Errorf("unknown script action %q", event.Action)
	}

	if err != nil {
		metadata["error"] = err.Error()
		logger.Log("ERROR", "Script action failed", metadata)
		return fmt.Errorf("script action %s on %s: %w", event.Action, event.Target, err)
	}

	metadata["applied"] = ok
	logger.Log("INFO", "Script action applied", metadata)
	return nil
}
