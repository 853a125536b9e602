package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/pkg/utils"
)

// ItemState is where a spawned item currently is
type ItemState string

const (
	ItemStateFalling   ItemState = "FALLING"
	ItemStateGround    ItemState = "GROUND"
	ItemStateDestroyed ItemState = "DESTROYED"
)

// GroundItem is a read-only view of a spawned item
type GroundItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	State        ItemState `json:"state"`
	DropProgress float64   `json:"drop_progress"`
}

// GroundSpawner keeps a ledger of every item the simulation spawned.
// Released items lie on the ground until picked up or destroyed.
type GroundSpawner struct {
	mu    sync.RWMutex
	items *catalog.Catalog
	order []string
	byID  map[string]*groundHandle
}

// NewGroundSpawner creates a spawner that only knows catalog items
func NewGroundSpawner(items *catalog.Catalog) (*GroundSpawner, error) {
	if items == nil {
		return nil, fmt.Errorf("ground spawner: catalog is required")
	}
	return &GroundSpawner{
		items: items,
		byID:  make(map[string]*groundHandle),
	}, nil
}

// SpawnItem creates a falling item
func (s *GroundSpawner) SpawnItem(name string) (catalog.ItemHandle, error) {
	if _, err := s.items.Lookup(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := &groundHandle{
		spawner: s,
		id:      utils.GenerateItemID(name),
		name:    name,
		state:   ItemStateFalling,
	}
	s.byID[h.id] = h
	s.order = append(s.order, h.id)
	return h, nil
}

// Items returns every item still in the world, in spawn order
func (s *GroundSpawner) Items() []GroundItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GroundItem, 0, len(s.order))
	for _, id := range s.order {
		h := s.byID[id]
		if h.state == ItemStateDestroyed {
			continue
		}
		out = append(out, h.view())
	}
	return out
}

// GroundCounts returns how many released items of each name lie on the ground
func (s *GroundSpawner) GroundCounts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, h := range s.byID {
		if h.state == ItemStateGround {
			counts[h.name]++
		}
	}
	return counts
}

// Pickup removes a grounded item and returns its name
func (s *GroundSpawner) Pickup(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.byID[id]
	if !ok || h.state != ItemStateGround {
		return "", fmt.Errorf("no item %s on the ground", id)
	}
	h.state = ItemStateDestroyed
	return h.name, nil
}

// PickupByName removes the oldest grounded item with name
func (s *GroundSpawner) PickupByName(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		h := s.byID[id]
		if h.name == name && h.state == ItemStateGround {
			h.state = ItemStateDestroyed
			return id, true
		}
	}
	return "", false
}

// Compact forgets destroyed items
func (s *GroundSpawner) Compact() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if s.byID[id].state == ItemStateDestroyed {
			delete(s.byID, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// Names returns the distinct names of items in the world, sorted
func (s *GroundSpawner) Names() []string {
	seen := make(map[string]bool)
	for _, item := range s.Items() {
		seen[item.Name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type groundHandle struct {
	spawner  *GroundSpawner
	id       string
	name     string
	state    ItemState
	progress float64
}

func (h *groundHandle) ID() string   { return h.id }
func (h *groundHandle) Name() string { return h.name }

func (h *groundHandle) SetDropProgress(progress float64) {
	h.spawner.mu.Lock()
	defer h.spawner.mu.Unlock()
	if h.state == ItemStateFalling {
		h.progress = progress
	}
}

func (h *groundHandle) Release() {
	h.spawner.mu.Lock()
	defer h.spawner.mu.Unlock()
	if h.state == ItemStateFalling {
		h.state = ItemStateGround
		h.progress = 1
	}
}

func (h *groundHandle) Destroy() {
	h.spawner.mu.Lock()
	defer h.spawner.mu.Unlock()
	h.state = ItemStateDestroyed
}

func (h *groundHandle) view() GroundItem {
	return GroundItem{ID: h.id, Name: h.name, State: h.state, DropProgress: h.progress}
}
