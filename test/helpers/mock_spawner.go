package helpers

import (
	"fmt"
	"sync"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
)

// MockItemHandle records what the simulation did with a spawned item
type MockItemHandle struct {
	id           string
	name         string
	DropProgress []float64
	Released     bool
	Destroyed    bool
}

func (h *MockItemHandle) ID() string   { return h.id }
func (h *MockItemHandle) Name() string { return h.name }

func (h *MockItemHandle) SetDropProgress(progress float64) {
	h.DropProgress = append(h.DropProgress, progress)
}

func (h *MockItemHandle) Release() { h.Released = true }
func (h *MockItemHandle) Destroy() { h.Destroyed = true }

// MockSpawner is a test double for catalog.Spawner that keeps every handle it creates
type MockSpawner struct {
	mu      sync.Mutex
	items   *catalog.Catalog
	Spawned []*MockItemHandle
	// FailOn makes SpawnItem fail for a name even if the catalog knows it
	FailOn  map[string]bool
}

// NewMockSpawner creates a spawner; a nil catalog accepts any name
func NewMockSpawner(items *catalog.Catalog) *MockSpawner {
	return &MockSpawner{items: items, FailOn: make(map[string]bool)}
}

// SpawnItem creates a recorded handle
func (m *MockSpawner) SpawnItem(name string) (catalog.ItemHandle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailOn[name] {
		return nil, fmt.Errorf("spawn failure injected for %s", name)
	}
	if m.items != nil {
		if _, err := m.items.Lookup(name); err != nil {
			return nil, err
		}
	}

	handle := &MockItemHandle{id: fmt.Sprintf("item-%d", len(m.Spawned)+1), name: name}
	m.Spawned = append(m.Spawned, handle)
	return handle, nil
}

// Names returns spawned item names in order
func (m *MockSpawner) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.Spawned))
	for _, handle := range m.Spawned {
		names = append(names, handle.name)
	}
	return names
}

// Released returns the names of released items in order
func (m *MockSpawner) Released() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var names []string
	for _, handle := range m.Spawned {
		if handle.Released {
			names = append(names, handle.name)
		}
	}
	return names
}

// MockPilot is a test double for the player actor seen by a rocket
type MockPilot struct {
	Grabbing bool
	Seated   bool
}

func (p *MockPilot) IsGrabbing() bool { return p.Grabbing }
func (p *MockPilot) Seat()            { p.Seated = true }
func (p *MockPilot) Unseat()          { p.Seated = false }

// TestCatalog builds the item set used across simulation tests
func TestCatalog() *catalog.Catalog {
	items, err := catalog.NewCatalog([]catalog.ItemData{
		{Name: "Wood", Category: catalog.CategoryFuel, FuelPower: 3},
		{Name: "Gaz", Category: catalog.CategoryFuel, FuelPower: 10},
		{Name: "Uranium", Category: catalog.CategoryFuel, FuelPower: 1000},
		{Name: "Iron", Category: catalog.CategoryGeneric},
		{Name: "Plank", Category: catalog.CategoryGeneric},
		{Name: "Plate", Category: catalog.CategoryGeneric},
		{Name: "Berry", Category: catalog.CategoryFood, FoodHunger: 4},
		{Name: "Meat", Category: catalog.CategoryFood, FoodHunger: 20},
		{Name: "Engine", Category: catalog.CategoryRocketPart, PartBuildIndex: 0},
		{Name: "Hull", Category: catalog.CategoryRocketPart, PartBuildIndex: 1},
		{Name: "Nose", Category: catalog.CategoryRocketPart, PartBuildIndex: 2},
	})
	if err != nil {
		panic(err)
	}
	return items
}
