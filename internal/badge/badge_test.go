package badge

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestForJobStatus(t *testing.T) {
	b := ForJobStatus("approved")
	assert.Equal(t, "Approved", b.Label)
	assert.Equal(t, ToneInfo, b.Tone)

	b = ForJobStatus(" Failed ")
	assert.Equal(t, "failed", b.Status)
	assert.Equal(t, ToneDanger, b.Tone)

	for status := range jobBadges {
		assert.NotEmpty(t, ForJobStatus(status).Icon, status)
	}
}

func TestForComplianceStatus(t *testing.T) {
	assert.Equal(t, "Compliant", ForComplianceStatus("passed").Label)
	assert.Equal(t, "shield-off", ForComplianceStatus("rejected").Icon)
}

func TestUnknownStatusFallsBack(t *testing.T) {
	b := ForJobStatus("needs_manual_check")
	assert.Equal(t, "Needs Manual Check", b.Label)
	assert.Equal(t, "help-circle", b.Icon)
	assert.Equal(t, ToneNeutral, b.Tone)

	assert.Equal(t, "Unknown", ForComplianceStatus("").Label)
}

func TestUnknownStatusLabelIsValidUTF8(t *testing.T) {
	tests := map[string]string{
		"élan":         "Élan",
		"ÉTAPE_finale": "Étape Finale",
		"über-review":  "Über Review",
		"日本_queue":     "日本 Queue",
	}
	for status, want := range tests {
		label := ForJobStatus(status).Label
		assert.True(t, utf8.ValidString(label), status)
		assert.Equal(t, want, label)
	}
}
