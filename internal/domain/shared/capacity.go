package shared

import "fmt"

// energyEpsilon absorbs float drift when comparing stored energy against zero
const energyEpsilon = 1e-6

// Capacity is a bounded store of energy or satiety measured in seconds of
// operation. It drains over time and is refilled in discrete amounts.
type Capacity struct {
	current float64
	max     float64
}

// NewCapacity creates a capacity, optionally starting full
func NewCapacity(max float64, full bool) (*Capacity, error) {
	if max < 0 {
		return nil, fmt.Errorf("capacity cannot be negative")
	}

	c := &Capacity{max: max}
	if full {
		c.current = max
	}
	return c, nil
}

// Current returns the stored amount
func (c *Capacity) Current() float64 {
	return c.current
}

// Max returns the upper bound
func (c *Capacity) Max() float64 {
	return c.max
}

// Missing returns how much can still be refilled
func (c *Capacity) Missing() float64 {
	return c.max - c.current
}

// Fraction returns current/max, or 0 for a zero capacity
func (c *Capacity) Fraction() float64 {
	if c.max <= 0 {
		return 0
	}
	return Clamp01(c.current / c.max)
}

// IsEmpty reports whether nothing is stored
func (c *Capacity) IsEmpty() bool {
	return c.current <= energyEpsilon
}

// IsFull reports whether the store is at its bound
func (c *Capacity) IsFull() bool {
	return c.max-c.current <= energyEpsilon
}

// Drain removes dt and reports whether this call emptied the store
func (c *Capacity) Drain(dt float64) bool {
	if dt <= 0 || c.IsEmpty() {
		return false
	}

	c.current -= dt
	if c.current <= energyEpsilon {
		c.current = 0
		return true
	}
	return false
}

// Refill adds amount up to max and returns what was actually applied
func (c *Capacity) Refill(amount float64) float64 {
	if amount <= 0 {
		return 0
	}

	applied := amount
	if missing := c.Missing(); applied > missing {
		applied = missing
	}
	c.current += applied
	return applied
}

// Fill tops the store up to max
func (c *Capacity) Fill() {
	c.current = c.max
}

// Empty drops the store to zero
func (c *Capacity) Empty() {
	c.current = 0
}

func (c *Capacity) String() string {
	return fmt.Sprintf("Capacity(%.2f/%.2f)", c.current, c.max)
}
