package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"trendreel/functions/models"
)

// DataStore defines the operations handlers expect from the Supabase store.
// The concrete implementation is store.SupabaseStore.
type DataStore interface {
	UpsertTrend(trend models.Trend) (*models.Trend, error)
	GetTrend(id string) (*models.Trend, error)
	GetBrand(id string) (*models.Brand, error)
	GetUserOrgID(userID string) (uuid.UUID, error)
	GetWallet(orgID uuid.UUID) (*models.CreditsWallet, error)
	AddCredits(orgID uuid.UUID, amount int, reason string) error
	DeductCredits(orgID uuid.UUID, amount int, reason string) error
	CreateVideoJob(job models.VideoJob) (*models.VideoJob, error)
	ApproveScript(jobID string) (*models.VideoJob, error)
	GetVideoJob(jobID string) (*models.VideoJob, error)
}

// PaymentProcessor authorizes credit purchases.
type PaymentProcessor interface {
	Authorize(orgID, paymentMethodID string, credits int) (string, error)
}

// ViralityRefresher stamps platform profiles as synced.
type ViralityRefresher interface {
	RefreshAll() (time.Time, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Store     DataStore
	Payments  PaymentProcessor
	Refresher ViralityRefresher
	Logger    *logrus.Logger
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(store DataStore, payments PaymentProcessor, refresher ViralityRefresher, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		Store:     store,
		Payments:  payments,
		Refresher: refresher,
		Logger:    logger,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return models.IsSupportedPlatform(fl.Field().String())
	})
	return v
}
