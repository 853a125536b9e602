package shared

// Interactable is the enable flag shared by every object a player can use
type Interactable struct {
	disabled bool
}

// IsInteractable reports whether interaction is enabled
func (i *Interactable) IsInteractable() bool {
	return !i.disabled
}

// SetInteractable enables or disables interaction
func (i *Interactable) SetInteractable(enabled bool) {
	i.disabled = !enabled
}
