package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"amana-donations/internal/core/domain"
	"amana-donations/internal/core/port"
)

// CampaignUseCase provides business logic for campaign display and donation
// checkout. It orchestrates the domain calculators, the campaign store and
// the payment provider to implement the port.CampaignUseCase interface.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	provider port.PaymentProvider

	// now supplies the current instant. Injected so tests can fix the
	// clock; production code uses time.Now.
	now func() time.Time
}

// NewCampaignUseCase creates a new usecase with the provided repository and
// payment provider.
func NewCampaignUseCase(repo port.CampaignRepository, provider port.PaymentProvider) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, provider: provider, now: time.Now}
}

// WithClock overrides the clock source and returns the usecase. Intended
// for tests.
func (u *CampaignUseCase) WithClock(now func() time.Time) *CampaignUseCase {
	u.now = now
	return u
}

// ListCampaigns returns display cards for all published campaigns.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]port.CampaignCard, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now()
	return lo.Map(campaigns, func(c domain.Campaign, _ int) port.CampaignCard {
		return buildCard(c, now)
	}), nil
}

// GetCampaign returns the display card for one campaign, with a billing
// preview when dailyAmount is supplied.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, slug string, dailyAmount *decimal.Decimal) (*port.CampaignCard, error) {
	camp, err := u.repo.GetCampaignBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}
	now := u.now()
	card := buildCard(*camp, now)
	if dailyAmount != nil {
		preview := billingPreview(camp.Schedule.BillingAt(*dailyAmount, now))
		card.Billing = &preview
	}
	return &card, nil
}

// CreateCheckout validates the signup window and amount, computes the
// billing breakdown, opens a provider checkout session and records a
// pending donation. Rule refusals come back as *port.RejectionError so the
// HTTP layer can surface the reason to the donor.
func (u *CampaignUseCase) CreateCheckout(ctx context.Context, req port.CheckoutRequest) (*port.CheckoutResponse, error) {
	camp, err := u.repo.GetCampaignBySlug(ctx, req.CampaignSlug)
	if err != nil {
		return nil, err
	}
	if camp == nil {
		return nil, port.ErrCampaignNotFound
	}

	now := u.now()
	if signup := camp.Schedule.SignupAt(now); !signup.Open {
		return nil, &port.RejectionError{Reason: signup.Reason}
	}
	if check := domain.ValidateAmount(req.DailyAmount, camp.Amounts); !check.Valid {
		return nil, &port.RejectionError{Reason: check.Error}
	}
	billing := camp.Schedule.BillingAt(req.DailyAmount, now)
	if camp.Schedule.EndDate != nil && billing.RemainingDays == nil {
		return nil, &port.RejectionError{Reason: "This campaign has no billable days remaining"}
	}

	// free text goes into provider metadata, clean it first
	donorName := domain.SanitizeMetadata(req.DonorName)
	message := domain.SanitizeMetadata(req.Message)

	donationID := uuid.New()
	session, err := u.provider.CreateCheckoutSession(ctx, port.CheckoutSessionParams{
		Reference:     donationID.String(),
		CampaignID:    camp.ID.String(),
		CampaignSlug:  camp.Slug,
		CampaignTitle: domain.SanitizeMetadata(camp.Title),
		Currency:      camp.Currency,
		DailyAmount:   req.DailyAmount,
		DonorName:     donorName,
		Message:       message,
		BillingStart:  billing.BillingStartDate,
		RemainingDays: billing.RemainingDays,
		TotalAmount:   billing.TotalAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	donation := &domain.Donation{
		ID:                donationID,
		CampaignID:        camp.ID,
		DonorName:         donorName,
		Message:           message,
		DailyAmount:       req.DailyAmount,
		BillingStartDate:  billing.BillingStartDate,
		IsLateJoin:        billing.IsLateJoin,
		RemainingDays:     billing.RemainingDays,
		TotalAmount:       billing.TotalAmount,
		ProviderSessionID: session.ID,
		Status:            domain.DonationStatusPending,
		CreatedAt:         now,
	}
	if err = u.repo.CreateDonation(ctx, donation); err != nil {
		return nil, fmt.Errorf("store donation: %w", err)
	}

	return &port.CheckoutResponse{
		DonationID:  donationID.String(),
		SessionID:   session.ID,
		CheckoutURL: session.URL,
		Billing:     billingPreview(billing),
	}, nil
}

func buildCard(c domain.Campaign, now time.Time) port.CampaignCard {
	signup := c.Schedule.SignupAt(now)
	return port.CampaignCard{
		Slug:              c.Slug,
		Title:             c.Title,
		Description:       c.Description,
		Currency:          c.Currency,
		Status:            c.Schedule.StatusAt(now),
		DateRange:         c.Schedule.DateRange(),
		SignupOpen:        signup.Open,
		SignupReason:      signup.Reason,
		MinimumAmount:     c.Amounts.Minimum,
		MaximumAmount:     c.Amounts.Maximum,
		PresetAmounts:     c.Amounts.Presets,
		AllowCustomAmount: c.Amounts.AllowCustom,
	}
}

func billingPreview(info domain.BillingInfo) port.BillingPreview {
	return port.BillingPreview{
		BillingStartDate: info.BillingStartDate.Format("2006-01-02"),
		IsLateJoin:       info.IsLateJoin,
		RemainingDays:    info.RemainingDays,
		TotalAmount:      info.TotalAmount,
	}
}
