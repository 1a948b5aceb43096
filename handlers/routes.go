package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Register mounts the edge functions and the dashboard API on app.
// requireUser guards the routes that act on the caller's organization.
func (h *ApplicationHandler) Register(app fiber.Router, requireUser fiber.Handler) {
	functions := app.Group("/functions/v1")
	functions.Post("/add-trending-url", h.AddTrendingURL)
	functions.Post("/approve-script", h.ApproveScript)
	functions.Post("/purchase-credits", requireUser, h.PurchaseCredits)
	functions.Post("/recreate-from-url", requireUser, h.RecreateFromURL)
	functions.Post("/refresh-virality-profiles", h.RefreshViralityProfiles)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/jobs/:jobId", requireUser, h.GetJobStatus)
	apiV1.Get("/brands/label", h.GetBrandLabel)
}
