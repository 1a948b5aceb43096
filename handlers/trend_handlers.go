package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"trendreel/functions/models"
	"trendreel/functions/utils"
)

const (
	defaultTrendCategory = "general"
	defaultTrendTitle    = "Untitled trend"
)

// AddTrendingURLRequest defines the expected request body for recording a trend.
// Platform and VideoURL are required; the rest are optional.
type AddTrendingURLRequest struct {
	Platform     string  `json:"platform" validate:"platform"`
	VideoURL     string  `json:"video_url" validate:"required,url"`
	Category     *string `json:"category,omitempty"`
	Title        *string `json:"title,omitempty"`
	ViewCount    *int64  `json:"view_count,omitempty" validate:"omitempty,gte=0"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty" validate:"omitempty,url"`
	BrandNotes   *string `json:"brand_notes,omitempty"`
}

// TrendResponse is returned after a trend is recorded.
type TrendResponse struct {
	Trend models.Trend `json:"trend"`
}

// AddTrendingURL godoc
// @Summary Record a trending video
// @Description Validates the platform and URL and upserts the trend keyed by platform and source URL.
// @Tags functions
// @Accept  json
// @Produce  json
// @Param   trend body AddTrendingURLRequest true "Trend to record"
// @Success 200 {object} TrendResponse "Trend recorded"
// @Failure 400 {object} utils.ErrorResponse "Invalid platform or missing video_url"
// @Failure 500 {object} utils.ErrorResponse "Store error"
// @Router /functions/v1/add-trending-url [post]
func (h *ApplicationHandler) AddTrendingURL(c *fiber.Ctx) error {
	req := new(AddTrendingURLRequest)
	if err := c.BodyParser(req); err != nil {
		h.Logger.WithError(err).Warn("add-trending-url: cannot parse body")
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}

	req.Platform = models.NormalizePlatform(req.Platform)
	req.VideoURL = utils.SanitizeInput(req.VideoURL)

	if err := validate.Struct(req); err != nil {
		h.Logger.WithFields(logrus.Fields{
			"platform":   req.Platform,
			"validation": utils.FormatValidationErrors(err),
		}).Warn("add-trending-url: validation failed")
		return utils.RespondWithError(c, fiber.StatusBadRequest, trendValidationMessage(err))
	}

	trend := models.Trend{
		Platform:     req.Platform,
		SourceURL:    req.VideoURL,
		Category:     valueOr(req.Category, defaultTrendCategory),
		Title:        valueOr(req.Title, defaultTrendTitle),
		ThumbnailURL: req.ThumbnailURL,
		BrandNotes:   req.BrandNotes,
	}
	if req.ViewCount != nil {
		trend.ViewCount = *req.ViewCount
	}

	saved, err := h.Store.UpsertTrend(trend)
	if err != nil {
		h.Logger.WithError(err).WithField("video_url", req.VideoURL).Error("add-trending-url: upsert failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.Logger.WithFields(logrus.Fields{"trend_id": saved.ID, "platform": saved.Platform}).Info("Trend recorded")
	return utils.RespondWithJSON(c, fiber.StatusOK, TrendResponse{Trend: *saved})
}

func trendValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.StructField() {
	case "Platform":
		return fmt.Sprintf("Invalid platform. Supported platforms: %s", strings.Join(models.SupportedPlatforms, ", "))
	case "VideoURL":
		if fe.Tag() == "required" {
			return "video_url is required"
		}
		return "video_url must be a valid URL"
	case "ViewCount":
		return "view_count must not be negative"
	case "ThumbnailURL":
		return "thumbnail_url must be a valid URL"
	}
	return utils.FormatValidationErrors(err)[0]
}

// valueOr returns the trimmed value of p, or def when p is nil or blank.
func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	if v := strings.TrimSpace(*p); v != "" {
		return v
	}
	return def
}
