package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"amana-donations/internal/core/domain"
)

// ErrCampaignNotFound is returned when the requested campaign slug does not
// exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// RejectionError marks a checkout refused by campaign rules (signup window,
// amount constraints, no billable days). Reason is safe to show to the
// donor.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string { return e.Reason }

// CampaignUseCase defines the business operations exposed by the donation
// engine. This interface is the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// ListCampaigns returns display cards for all published campaigns.
	ListCampaigns(ctx context.Context) ([]CampaignCard, error)

	// GetCampaign returns the display card for one campaign. When
	// dailyAmount is non-nil the card includes a billing preview for a
	// subscriber joining now. Returns ErrCampaignNotFound for unknown
	// slugs.
	GetCampaign(ctx context.Context, slug string, dailyAmount *decimal.Decimal) (*CampaignCard, error)

	// CreateCheckout validates the signup and amount, computes the billing
	// breakdown, opens a provider checkout session and records a pending
	// donation. Business-rule refusals are returned as *RejectionError.
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error)
}

// CampaignCard is the display representation of a campaign. Status label
// and color are opaque presentation hints resolved by the domain.
type CampaignCard struct {
	Slug              string            `json:"slug"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	Currency          string            `json:"currency"`
	Status            domain.Status     `json:"status"`
	DateRange         string            `json:"date_range"`
	SignupOpen        bool              `json:"signup_open"`
	SignupReason      string            `json:"signup_reason,omitempty"`
	MinimumAmount     decimal.Decimal   `json:"minimum_amount"`
	MaximumAmount     *decimal.Decimal  `json:"maximum_amount,omitempty"`
	PresetAmounts     []decimal.Decimal `json:"preset_amounts,omitempty"`
	AllowCustomAmount bool              `json:"allow_custom_amount"`
	Billing           *BillingPreview   `json:"billing,omitempty"`
}

// BillingPreview is the billing breakdown shown to a donor before checkout.
// RemainingDays and TotalAmount are omitted for unbounded campaigns.
type BillingPreview struct {
	BillingStartDate string           `json:"billing_start_date"`
	IsLateJoin       bool             `json:"is_late_join"`
	RemainingDays    *int             `json:"remaining_days,omitempty"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty"`
}

// CheckoutRequest is the inbound DTO for creating a checkout session.
type CheckoutRequest struct {
	CampaignSlug string          `json:"campaign_slug"`
	DailyAmount  decimal.Decimal `json:"daily_amount"`
	DonorName    string          `json:"donor_name"`
	Message      string          `json:"message"`
}

// CheckoutResponse is returned after a provider session has been opened.
type CheckoutResponse struct {
	DonationID  string         `json:"donation_id"`
	SessionID   string         `json:"session_id"`
	CheckoutURL string         `json:"checkout_url"`
	Billing     BillingPreview `json:"billing"`
}
