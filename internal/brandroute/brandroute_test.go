package brandroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelForVertical(t *testing.T) {
	tests := []struct {
		vertical string
		want     string
	}{
		{"Real Estate Agent", "AIRealtors247.ca"},
		{"realtor", "AIRealtors247.ca"},
		{"Family Lawyer", "AILawyers247.ca"},
		{"Personal Injury Attorney", "AILawyers247.ca"},
		{"Plumbing", "AIAgents247.ca"},
		{"Lawn Care", "AIAgents247.ca"},
		{"", "AIAgents247.ca"},
	}
	for _, tt := range tests {
		t.Run(tt.vertical, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelForVertical(tt.vertical))
		})
	}
}

func TestNormalizeVerticalSlug(t *testing.T) {
	assert.Equal(t, "garage-door-repair", NormalizeVerticalSlug("Garage Door Repair!"))
	assert.Equal(t, "hvac-heating-cooling", NormalizeVerticalSlug("  HVAC / Heating & Cooling  "))
	assert.Equal(t, "", NormalizeVerticalSlug("!!!"))
}
