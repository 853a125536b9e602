package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig holds per-user preferences kept in ~/.outpost/config.json.
// A preference only replaces a setting that is still at its built-in default,
// so flags, environment and the config file always win.
type UserConfig struct {
	DefaultWorld string  `json:"default_world,omitempty"`
	DefaultSpeed float64 `json:"default_speed,omitempty"`
}

// Apply copies the preferences into cfg
func (u *UserConfig) Apply(cfg *Config) {
	if u.DefaultWorld != "" && cfg.Simulation.WorldFile == DefaultWorldFile {
		cfg.Simulation.WorldFile = u.DefaultWorld
	}
	if u.DefaultSpeed > 0 && cfg.Simulation.Speed == DefaultSpeed {
		cfg.Simulation.Speed = u.DefaultSpeed
	}
}

// UserConfigHandler reads and writes the preferences file
type UserConfigHandler struct {
	path string
}

// NewUserConfigHandler uses ~/.outpost/config.json
func NewUserConfigHandler() (*UserConfigHandler, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return NewUserConfigHandlerAt(filepath.Join(home, ".outpost", "config.json"))
}

// NewUserConfigHandlerAt uses an explicit file, creating its directory
func NewUserConfigHandlerAt(path string) (*UserConfigHandler, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	return &UserConfigHandler{path: path}, nil
}

// Path returns the preferences file location
func (h *UserConfigHandler) Path() string {
	return h.path
}

// Load returns the stored preferences; a missing file means none
func (h *UserConfigHandler) Load() (*UserConfig, error) {
	data, err := os.ReadFile(h.path)
	if errors.Is(err, os.ErrNotExist) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user config: %w", err)
	}

	prefs := &UserConfig{}
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse user config %s: %w", h.path, err)
	}
	return prefs, nil
}

// Save replaces the file through a rename so readers never see a partial write
func (h *UserConfigHandler) Save(prefs *UserConfig) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user config: %w", err)
	}

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write user config: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace user config: %w", err)
	}
	return nil
}

// Update loads, edits and saves the preferences
func (h *UserConfigHandler) Update(edit func(*UserConfig) error) error {
	prefs, err := h.Load()
	if err != nil {
		return err
	}
	if err := edit(prefs); err != nil {
		return err
	}
	return h.Save(prefs)
}

func (h *UserConfigHandler) SetDefaultWorld(path string) error {
	return h.Update(func(u *UserConfig) error {
		u.DefaultWorld = path
		return nil
	})
}

func (h *UserConfigHandler) SetDefaultSpeed(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("speed must be positive, got %g", speed)
	}
	return h.Update(func(u *UserConfig) error {
		u.DefaultSpeed = speed
		return nil
	})
}

// Clear forgets every preference
func (h *UserConfigHandler) Clear() error {
	return h.Save(&UserConfig{})
}
