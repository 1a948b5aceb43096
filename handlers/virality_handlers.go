package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"trendreel/functions/utils"
)

// RefreshViralityResponse reports when the profiles were stamped.
type RefreshViralityResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// RefreshViralityProfiles godoc
// @Summary Refresh platform virality profiles
// @Description Stamps last_synced on every platform virality profile.
// @Tags functions
// @Produce  json
// @Success 200 {object} RefreshViralityResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /functions/v1/refresh-virality-profiles [post]
func (h *ApplicationHandler) RefreshViralityProfiles(c *fiber.Ctx) error {
	at, err := h.Refresher.RefreshAll()
	if err != nil {
		h.Logger.WithError(err).Error("refresh-virality-profiles: refresh failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, RefreshViralityResponse{
		Success:   true,
		Message:   "Virality profiles refreshed",
		Timestamp: at.Format(time.RFC3339),
	})
}
