package handlers

import (
	"github.com/gofiber/fiber/v2"

	"trendreel/functions/internal/brandroute"
	"trendreel/functions/utils"
)

// BrandLabelResponse is the brand site serving a vertical.
type BrandLabelResponse struct {
	Vertical   string `json:"vertical"`
	Slug       string `json:"slug"`
	BrandLabel string `json:"brand_label"`
}

// GetBrandLabel godoc
// @Summary Route a vertical to its brand
// @Description Returns the brand label and URL slug for a free-text vertical.
// @Tags brands
// @Produce  json
// @Param   vertical query string true "Vertical, e.g. Real Estate Agent"
// @Success 200 {object} BrandLabelResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/brands/label [get]
func (h *ApplicationHandler) GetBrandLabel(c *fiber.Ctx) error {
	vertical := utils.SanitizeInput(c.Query("vertical"))
	if vertical == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "vertical is required")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, BrandLabelResponse{
		Vertical:   vertical,
		Slug:       brandroute.NormalizeVerticalSlug(vertical),
		BrandLabel: brandroute.LabelForVertical(vertical),
	})
}
