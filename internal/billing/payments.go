package billing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StubProcessor accepts every payment without contacting a provider. It
// records the configured price so purchases can be reconciled once a real
// provider is connected.
type StubProcessor struct {
	PriceID string
	Logger  *logrus.Logger
}

// NewStubProcessor returns a processor that logs through logger.
func NewStubProcessor(priceID string, logger *logrus.Logger) *StubProcessor {
	return &StubProcessor{PriceID: priceID, Logger: logger}
}

// Authorize returns a payment reference for a credit purchase.
func (p *StubProcessor) Authorize(orgID, paymentMethodID string, credits int) (string, error) {
	if strings.TrimSpace(paymentMethodID) == "" {
		return "", fmt.Errorf("payment method is required")
	}
	if credits <= 0 {
		return "", fmt.Errorf("credits must be positive, got %d", credits)
	}

	reference := "stub_" + uuid.NewString()
	p.Logger.WithFields(logrus.Fields{
		"org_id":            orgID,
		"payment_method_id": paymentMethodID,
		"credits":           credits,
		"price_id":          p.PriceID,
		"reference":         reference,
	}).Warn("Payment provider not connected; authorizing credit purchase without charge")
	return reference, nil
}
