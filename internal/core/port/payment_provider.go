package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutSessionParams carries everything the payment provider needs to
// open a hosted checkout session for a recurring daily donation. Free-text
// fields (DonorName, Message) must already be sanitized for provider
// metadata.
type CheckoutSessionParams struct {
	Reference     string // donation id, echoed back by the provider
	CampaignID    string
	CampaignSlug  string
	CampaignTitle string
	Currency      string
	DailyAmount   decimal.Decimal
	DonorName     string
	Message       string
	BillingStart  time.Time
	RemainingDays *int
	TotalAmount   *decimal.Decimal
}

// CheckoutSession is the provider-side session the donor is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentProvider defines the outbound port to the payment processor.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
}
