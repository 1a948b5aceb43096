package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"trendreel/functions/internal/store"
	"trendreel/functions/middleware"
	"trendreel/functions/utils"
)

// PurchaseCreditsRequest defines the expected request body for buying credits.
type PurchaseCreditsRequest struct {
	Credits         int    `json:"credits" validate:"gt=0"`
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
}

// PurchaseCreditsResponse is returned after credits are added.
type PurchaseCreditsResponse struct {
	Success      bool `json:"success"`
	CreditsAdded int  `json:"credits_added"`
}

// PurchaseCredits godoc
// @Summary Purchase credits
// @Description Authorizes the payment and adds the credits to the caller's organization wallet.
// @Tags functions
// @Accept  json
// @Produce  json
// @Param   body body PurchaseCreditsRequest true "Purchase"
// @Security BearerAuth
// @Success 200 {object} PurchaseCreditsResponse
// @Failure 400 {object} utils.ErrorResponse "Malformed body or non-positive credits"
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "Caller has no organization"
// @Failure 500 {object} utils.ErrorResponse
// @Router /functions/v1/purchase-credits [post]
func (h *ApplicationHandler) PurchaseCredits(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	req := new(PurchaseCreditsRequest)
	if err := c.BodyParser(req); err != nil {
		h.Logger.WithError(err).Warn("purchase-credits: cannot parse body")
		return utils.RespondWithError(c, fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
	}
	if err := validate.Struct(req); err != nil {
		h.Logger.WithField("validation", utils.FormatValidationErrors(err)).Warn("purchase-credits: validation failed")
		return utils.RespondWithError(c, fiber.StatusBadRequest, "credits must be a positive integer and paymentMethodId is required")
	}

	orgID, err := h.Store.GetUserOrgID(userID)
	if err != nil {
		return h.orgLookupError(c, "purchase-credits", userID, err)
	}

	log := h.Logger.WithFields(logrus.Fields{"org_id": orgID, "credits": req.Credits})

	reference, err := h.Payments.Authorize(orgID.String(), req.PaymentMethodID, req.Credits)
	if err != nil {
		log.WithError(err).Error("purchase-credits: payment failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := h.Store.AddCredits(orgID, req.Credits, "purchase:"+reference); err != nil {
		log.WithError(err).WithField("payment_reference", reference).Error("purchase-credits: add_credits failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	log.WithField("payment_reference", reference).Info("Credits purchased")
	return utils.RespondWithJSON(c, fiber.StatusOK, PurchaseCreditsResponse{
		Success:      true,
		CreditsAdded: req.Credits,
	})
}

// orgLookupError answers a failed caller → organization lookup.
func (h *ApplicationHandler) orgLookupError(c *fiber.Ctx, op, userID string, err error) error {
	log := h.Logger.WithFields(logrus.Fields{"op": op, "user_id": userID})
	if errors.Is(err, store.ErrRecordNotFound) {
		log.Warn("Organization not found for user")
		return utils.RespondWithError(c, fiber.StatusNotFound, "Organization not found")
	}
	log.WithError(err).Error("Organization lookup failed")
	return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
}
