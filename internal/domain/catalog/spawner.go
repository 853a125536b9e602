package catalog

// ItemHandle is a spawned world item owned by the caller until Release or Destroy
type ItemHandle interface {
	ID() string
	Name() string
	// SetDropProgress reports how far a dropping item has travelled, in [0,1]
	SetDropProgress(progress float64)
	// Release hands the item over to the world
	Release()
	Destroy()
}

// Spawner creates world items by catalog name
type Spawner interface {
	SpawnItem(name string) (ItemHandle, error)
}
