package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Donation statuses. A donation is created pending when a checkout session
// is opened and moves to completed or canceled when the provider settles it.
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusCanceled  = "canceled"
)

// Donation records a subscriber's checkout against a campaign, including
// the billing breakdown computed at signup time. RemainingDays and
// TotalAmount are nil for unbounded campaigns.
type Donation struct {
	ID                uuid.UUID
	CampaignID        uuid.UUID
	DonorName         string
	Message           string
	DailyAmount       decimal.Decimal
	BillingStartDate  time.Time
	IsLateJoin        bool
	RemainingDays     *int
	TotalAmount       *decimal.Decimal
	ProviderSessionID string
	Status            string
	CreatedAt         time.Time
}
