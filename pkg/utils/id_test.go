package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateItemID(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"Iron Plate", `^iron-plate-[0-9a-f]{8}$`},
		{"Gaz", `^gaz-[0-9a-f]{8}$`},
		{"", `^item-[0-9a-f]{8}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Regexp(t, regexp.MustCompile(tt.pattern), GenerateItemID(tt.name))
		})
	}
}

func TestGenerateItemID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateItemID("Wood"), GenerateItemID("Wood"))
}

func TestGenerateSessionID(t *testing.T) {
	assert.Regexp(t, `^session-[0-9a-f]{8}$`, GenerateSessionID())
}
