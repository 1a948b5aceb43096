package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trendreel/functions/internal/badge"
	"trendreel/functions/internal/store"
	"trendreel/functions/middleware"
	"trendreel/functions/models"
	"trendreel/functions/utils"
)

// ApproveScriptRequest defines the expected request body for approving a script.
type ApproveScriptRequest struct {
	JobID string `json:"job_id"`
}

// ApproveScriptResponse is returned once a job's script is approved.
type ApproveScriptResponse struct {
	Success bool   `json:"success"`
	JobID   string `json:"job_id"`
	Message string `json:"message"`
}

// JobStatusResponse is a job with the badges the dashboard renders for it.
type JobStatusResponse struct {
	Job             models.VideoJob `json:"job"`
	StatusBadge     badge.Badge     `json:"status_badge"`
	ComplianceBadge badge.Badge     `json:"compliance_badge"`
}

// ApproveScript godoc
// @Summary Approve a job's script
// @Description Marks the video job's script as approved and moves the job to the approved status.
// @Tags functions
// @Accept  json
// @Produce  json
// @Param   body body ApproveScriptRequest true "Job to approve"
// @Success 200 {object} ApproveScriptResponse "Script approved"
// @Failure 500 {object} utils.ErrorResponse "Missing job_id, unknown job or store error"
// @Router /functions/v1/approve-script [post]
func (h *ApplicationHandler) ApproveScript(c *fiber.Ctx) error {
	req := new(ApproveScriptRequest)
	if err := c.BodyParser(req); err != nil {
		h.Logger.WithError(err).Error("approve-script: cannot parse body")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("Invalid request body: %v", err))
	}

	jobID := strings.TrimSpace(req.JobID)
	if jobID == "" {
		h.Logger.Error("approve-script: job_id missing")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "job_id is required")
	}

	job, err := h.Store.ApproveScript(jobID)
	if err != nil {
		h.Logger.WithError(err).WithField("job_id", jobID).Error("approve-script: update failed")
		if errors.Is(err, store.ErrRecordNotFound) {
			return utils.RespondWithError(c, fiber.StatusInternalServerError, fmt.Sprintf("No video job found with id %s", jobID))
		}
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.Logger.WithField("job_id", job.ID).Info("Script approved")
	return utils.RespondWithJSON(c, fiber.StatusOK, ApproveScriptResponse{
		Success: true,
		JobID:   jobID,
		Message: "Script approved successfully",
	})
}

// GetJobStatus godoc
// @Summary Get a video job
// @Description Returns a job of the caller's organization with its status and compliance badges.
// @Tags jobs
// @Produce  json
// @Param   jobId path string true "Video job id"
// @Security BearerAuth
// @Success 200 {object} JobStatusResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/jobs/{jobId} [get]
func (h *ApplicationHandler) GetJobStatus(c *fiber.Ctx) error {
	jobID := c.Params("jobId")
	userID := middleware.UserID(c)

	if _, err := uuid.Parse(jobID); err != nil {
		h.Logger.WithField("job_id", jobID).Warn("get-job: job id is not a UUID")
		return utils.RespondWithError(c, fiber.StatusNotFound, "Job not found")
	}

	orgID, err := h.Store.GetUserOrgID(userID)
	if err != nil {
		return h.orgLookupError(c, "get-job", userID, err)
	}

	job, err := h.Store.GetVideoJob(jobID)
	if errors.Is(err, store.ErrRecordNotFound) || (err == nil && job.OrgID != orgID) {
		h.Logger.WithField("job_id", jobID).Warn("get-job: job not found for caller's organization")
		return utils.RespondWithError(c, fiber.StatusNotFound, "Job not found")
	}
	if err != nil {
		h.Logger.WithError(err).WithField("job_id", jobID).Error("get-job: lookup failed")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, JobStatusResponse{
		Job:             *job,
		StatusBadge:     badge.ForJobStatus(job.Status),
		ComplianceBadge: badge.ForComplianceStatus(job.ComplianceStatus),
	})
}
