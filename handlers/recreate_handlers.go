package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"trendreel/functions/internal/billing"
	"trendreel/functions/internal/store"
	"trendreel/functions/middleware"
	"trendreel/functions/models"
	"trendreel/functions/utils"
)

const placeholderBrandName = "Your Brand"

// RecreateFromURLRequest defines the expected request body for recreating a trend.
// A missing or null post_targets falls back to billing.DefaultPostTargets.
type RecreateFromURLRequest struct {
	TrendID     string   `json:"trend_id" validate:"required,uuid"`
	BrandID     *string  `json:"brand_id,omitempty"`
	PostTargets []string `json:"post_targets,omitempty"`
}

// RecreateFromURLResponse is returned once credits are charged and the job is queued.
type RecreateFromURLResponse struct {
	VideoJobID     string `json:"video_job_id"`
	CreditsCharged int    `json:"credits_charged"`
	Message        string `json:"message"`
}

// RecreateFromURL godoc
// @Summary Recreate a trending video
// @Description Charges the caller's organization 120 credits plus 10 per post target (at least one) and queues a video job modelled on the trend.
// @Tags functions
// @Accept  json
// @Produce  json
// @Param   body body RecreateFromURLRequest true "Recreation request"
// @Security BearerAuth
// @Success 200 {object} RecreateFromURLResponse
// @Failure 400 {object} utils.ErrorResponse "Malformed body or ids"
// @Failure 401 {object} utils.ErrorResponse
// @Failure 402 {object} utils.ErrorResponse "Insufficient credits"
// @Failure 404 {object} utils.ErrorResponse "Organization or trend not found"
// @Failure 500 {object} utils.ErrorResponse
// @Router /functions/v1/recreate-from-url [post]
func (h *ApplicationHandler) RecreateFromURL(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	req := new(RecreateFromURLRequest)
	if err := c.BodyParser(req); err != nil {
		h.Logger.WithError(err).Warn("recreate-from-url: cannot parse body")
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		h.Logger.WithField("validation", utils.FormatValidationErrors(err)).Warn("recreate-from-url: validation failed")
		return utils.RespondWithError(c, fiber.StatusBadRequest, "trend_id is required and must be a UUID")
	}

	// --- 1. Resolve the caller's organization ---
	orgID, err := h.Store.GetUserOrgID(userID)
	if err != nil {
		return h.orgLookupError(c, "recreate-from-url", userID, err)
	}
	log := h.Logger.WithFields(logrus.Fields{"org_id": orgID, "trend_id": req.TrendID})

	// --- 2. Load the trend ---
	trend, err := h.Store.GetTrend(req.TrendID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			log.Warn("recreate-from-url: trend not found")
			return utils.RespondWithError(c, fiber.StatusNotFound, "Trend not found")
		}
		log.WithError(err).Error("recreate-from-url: trend lookup failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	// --- 3. Resolve the brand name ---
	brandName := placeholderBrandName
	var brandID *uuid.UUID
	if req.BrandID != nil && strings.TrimSpace(*req.BrandID) != "" {
		id, err := uuid.Parse(strings.TrimSpace(*req.BrandID))
		if err != nil {
			log.WithField("brand_id", *req.BrandID).Warn("recreate-from-url: brand_id is not a UUID, using placeholder name")
		} else {
			brandID = &id
			brand, err := h.Store.GetBrand(id.String())
			if err != nil {
				log.WithError(err).WithField("brand_id", id).Warn("recreate-from-url: brand lookup failed, using placeholder name")
			} else if strings.TrimSpace(brand.Name) != "" {
				brandName = brand.Name
			}
		}
	}

	// --- 4. Price the job ---
	targets := billing.ResolvePostTargets(req.PostTargets)
	cost := billing.RecreateCost(targets)
	log = log.WithField("cost", cost)

	// --- 5. Check the balance before charging ---
	balance := 0
	wallet, err := h.Store.GetWallet(orgID)
	switch {
	case err == nil:
		balance = wallet.CurrentCredits
	case errors.Is(err, store.ErrRecordNotFound):
		log.Warn("recreate-from-url: organization has no wallet")
	default:
		log.WithError(err).Error("recreate-from-url: wallet lookup failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}
	if balance < cost {
		log.WithField("balance", balance).Warn("recreate-from-url: insufficient credits")
		return insufficientCredits(c, balance, cost)
	}

	// --- 6. Charge ---
	reason := fmt.Sprintf("recreate:%s", trend.ID)
	if err := h.Store.DeductCredits(orgID, cost, reason); err != nil {
		if errors.Is(err, store.ErrInsufficientCredits) {
			log.Warn("recreate-from-url: charge refused for insufficient credits")
			return insufficientCredits(c, balance, cost)
		}
		log.WithError(err).Error("recreate-from-url: charge failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	// --- 7. Create the job ---
	vertical := trend.Category
	prompt := fmt.Sprintf("Recreate the trending %s video %q for %s", trend.Platform, trend.Title, brandName)
	trendID := trend.ID
	job, err := h.Store.CreateVideoJob(models.VideoJob{
		OrgID:            orgID,
		BrandID:          brandID,
		SourceTrendID:    &trendID,
		Status:           models.JobStatusQueued,
		ComplianceStatus: models.ComplianceStatusPending,
		TargetPlatforms:  targets,
		TargetVertical:   &vertical,
		CampaignType:     models.CampaignTypeTrendRecreation,
		Prompt:           &prompt,
		CreditsCharged:   cost,
	})
	if err != nil {
		log.WithError(err).Error("recreate-from-url: job creation failed after charge, refunding")
		if refundErr := h.Store.AddCredits(orgID, cost, "refund:"+reason); refundErr != nil {
			log.WithError(refundErr).Error("recreate-from-url: refund failed, credits charged without a job")
		}
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.WithField("video_job_id", job.ID).Info("Recreation job queued")
	return utils.RespondWithJSON(c, fiber.StatusOK, RecreateFromURLResponse{
		VideoJobID:     job.ID.String(),
		CreditsCharged: cost,
		Message:        fmt.Sprintf("Video job created for %s", brandName),
	})
}

func insufficientCredits(c *fiber.Ctx, balance, cost int) error {
	return utils.RespondWithError(c, fiber.StatusPaymentRequired,
		fmt.Sprintf("Insufficient credits: %d required, %d available", cost, balance))
}
