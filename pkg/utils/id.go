package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateItemID creates a readable id for a spawned item.
// Format: {item-name-slug}-{8charHexUUID}
//
// Example:
//   - Input: name="Iron Plate"
//   - Output: "iron-plate-a3f8e2b1"
func GenerateItemID(name string) string {
	return slug(name) + "-" + generateShortUUID()
}

// GenerateSessionID creates the id of a simulation session.
// Format: session-{8charHexUUID}
func GenerateSessionID() string {
	return "session-" + generateShortUUID()
}

// slug lowercases name and joins its words with hyphens:
//   - "Iron Plate" -> "iron-plate"
//   - "  Gaz  " -> "gaz"
//   - "" -> "item"
func slug(name string) string {
	words := strings.Fields(strings.ToLower(name))
	if len(words) == 0 {
		return "item"
	}
	return strings.Join(words, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID.
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
