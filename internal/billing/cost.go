// Package billing prices credit-consuming features and stands in for the
// payment provider.
package billing

import "trendreel/functions/models"

// Recreation pricing, in credits.
const (
	RecreateBaseCost      = 120
	RecreatePerTargetCost = 10
)

// DefaultPostTargets is used when a recreation request names no targets.
var DefaultPostTargets = []string{models.PlatformTikTok, models.PlatformInstagram}

// ResolvePostTargets returns the default targets when none were supplied.
// An explicit empty list is kept as is.
func ResolvePostTargets(targets []string) []string {
	if targets == nil {
		out := make([]string, len(DefaultPostTargets))
		copy(out, DefaultPostTargets)
		return out
	}
	return targets
}

// RecreateCost is 120 plus 10 per target, charging at least one target.
func RecreateCost(targets []string) int {
	n := len(targets)
	if n < 1 {
		n = 1
	}
	return RecreateBaseCost + RecreatePerTargetCost*n
}
