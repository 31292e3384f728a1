package stripeadapter

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"amana-donations/internal/config/configs"
	"amana-donations/internal/core/port"
)

// Provider implements port.PaymentProvider using Stripe Checkout Sessions.
// Each donation is a daily recurring price created inline on the session;
// the billing window is carried in the session metadata so downstream
// settlement can cancel bounded subscriptions after the last billable day.
type Provider struct {
	cfg configs.Stripe
}

// NewProvider configures the global Stripe key and returns the provider.
func NewProvider(cfg configs.Stripe) *Provider {
	stripe.Key = cfg.APIKey
	return &Provider{cfg: cfg}
}

// CreateCheckoutSession opens a hosted Stripe checkout session for a
// recurring daily donation.
func (p *Provider) CreateCheckoutSession(ctx context.Context, params port.CheckoutSessionParams) (*port.CheckoutSession, error) {
	// Stripe amounts are integer minor units
	unitAmount := params.DailyAmount.Mul(decimal.NewFromInt(100)).IntPart()

	sessParams := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:        stripe.String(p.cfg.SuccessURL),
		CancelURL:         stripe.String(p.cfg.CancelURL),
		ClientReferenceID: stripe.String(params.Reference),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(params.Currency),
				UnitAmount: stripe.Int64(unitAmount),
				Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
					Interval: stripe.String("day"),
				},
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(params.CampaignTitle),
				},
			},
		}},
	}
	sessParams.Context = ctx

	sessParams.AddMetadata("campaign_id", params.CampaignID)
	sessParams.AddMetadata("campaign_slug", params.CampaignSlug)
	sessParams.AddMetadata("donor_name", params.DonorName)
	if params.Message != "" {
		sessParams.AddMetadata("message", params.Message)
	}
	sessParams.AddMetadata("billing_start_date", params.BillingStart.UTC().Format("2006-01-02"))
	if params.RemainingDays != nil {
		sessParams.AddMetadata("remaining_days", strconv.Itoa(*params.RemainingDays))
	}
	if params.TotalAmount != nil {
		sessParams.AddMetadata("total_amount", params.TotalAmount.String())
	}

	s, err := session.New(sessParams)
	if err != nil {
		return nil, err
	}
	return &port.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
