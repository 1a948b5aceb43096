// Package brandroute maps a free-text vertical to the brand site that
// serves it.
package brandroute

import (
	"regexp"
	"strings"
)

// Brand labels.
const (
	RealtorsBrand = "AIRealtors247.ca"
	LawyersBrand  = "AILawyers247.ca"
	DefaultBrand  = "AIAgents247.ca"
)

type route struct {
	keywords []string
	label    string
}

// routes are checked in order; the first keyword hit wins.
var routes = []route{
	{keywords: []string{"real estate", "realtor", "realty"}, label: RealtorsBrand},
	{keywords: []string{"lawyer", "attorney", "legal", "law firm"}, label: LawyersBrand},
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// LabelForVertical returns the brand label for a vertical such as
// "Real Estate Agent". Unmatched verticals get DefaultBrand.
func LabelForVertical(vertical string) string {
	v := strings.ToLower(vertical)
	for _, r := range routes {
		for _, kw := range r.keywords {
			if strings.Contains(v, kw) {
				return r.label
			}
		}
	}
	return DefaultBrand
}

// NormalizeVerticalSlug turns a vertical into a URL slug:
// "Garage Door Repair!" becomes "garage-door-repair".
func NormalizeVerticalSlug(vertical string) string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(strings.TrimSpace(vertical)), "-")
	return strings.Trim(slug, "-")
}
