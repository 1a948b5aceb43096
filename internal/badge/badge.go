// Package badge maps job and compliance statuses to display badges.
package badge

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"trendreel/functions/models"
)

// Tones used by the dashboard to color a badge.
const (
	ToneNeutral = "neutral"
	ToneInfo    = "info"
	ToneSuccess = "success"
	ToneWarning = "warning"
	ToneDanger  = "danger"
)

// Badge is what the dashboard renders for a status value.
type Badge struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Icon   string `json:"icon"`
	Tone   string `json:"tone"`
}

var jobBadges = map[string]Badge{
	models.JobStatusQueued:           {Label: "Queued", Icon: "clock", Tone: ToneNeutral},
	models.JobStatusApproved:         {Label: "Approved", Icon: "check", Tone: ToneInfo},
	models.JobStatusScripting:        {Label: "Scripting", Icon: "file-text", Tone: ToneInfo},
	models.JobStatusRendering:        {Label: "Rendering", Icon: "loader", Tone: ToneInfo},
	models.JobStatusComplianceReview: {Label: "In Review", Icon: "shield", Tone: ToneWarning},
	models.JobStatusReady:            {Label: "Ready", Icon: "check-circle", Tone: ToneSuccess},
	models.JobStatusPosted:           {Label: "Posted", Icon: "send", Tone: ToneSuccess},
	models.JobStatusFailed:           {Label: "Failed", Icon: "x-circle", Tone: ToneDanger},
}

var complianceBadges = map[string]Badge{
	models.ComplianceStatusPending:  {Label: "Pending Review", Icon: "clock", Tone: ToneNeutral},
	models.ComplianceStatusPassed:   {Label: "Compliant", Icon: "shield-check", Tone: ToneSuccess},
	models.ComplianceStatusFlagged:  {Label: "Flagged", Icon: "alert-triangle", Tone: ToneWarning},
	models.ComplianceStatusRejected: {Label: "Rejected", Icon: "shield-off", Tone: ToneDanger},
}

// ForJobStatus returns the badge for a video job status.
func ForJobStatus(status string) Badge {
	return lookup(jobBadges, status)
}

// ForComplianceStatus returns the badge for a compliance status.
func ForComplianceStatus(status string) Badge {
	return lookup(complianceBadges, status)
}

func lookup(table map[string]Badge, status string) Badge {
	key := strings.ToLower(strings.TrimSpace(status))
	if b, ok := table[key]; ok {
		b.Status = key
		return b
	}
	return Badge{Status: status, Label: humanize(status), Icon: "help-circle", Tone: ToneNeutral}
}

// humanize turns "needs_manual_check" into "Needs Manual Check".
func humanize(status string) string {
	words := strings.FieldsFunc(status, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	if len(words) == 0 {
		return "Unknown"
	}
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
