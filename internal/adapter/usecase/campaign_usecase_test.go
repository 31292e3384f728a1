package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"amana-donations/internal/core/domain"
	"amana-donations/internal/core/port"
	"amana-donations/internal/core/port/mocks"
)

// refNow is the fixed clock used across usecase tests.
var refNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return refNow }

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func boundedCampaign(t *testing.T) *domain.Campaign {
	t.Helper()
	end := date(t, "2025-03-20")
	return &domain.Campaign{
		ID:       uuid.New(),
		Slug:     "ramadan-iftar",
		Title:    "Ramadan Iftar Fund",
		Currency: "usd",
		Schedule: domain.Schedule{StartDate: date(t, "2025-03-10"), EndDate: &end},
		Amounts: domain.AmountRules{
			Minimum: decimal.NewFromInt(1),
			Presets: []decimal.Decimal{decimal.NewFromInt(5), decimal.NewFromInt(10), decimal.NewFromInt(20)},
		},
	}
}

// TestCreateCheckout covers the happy path: a late joiner of a bounded
// campaign gets billed from the next day through the end date, the session
// carries sanitized metadata and a pending donation is stored.
func TestCreateCheckout(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockPaymentProvider(t)
	camp := boundedCampaign(t)

	repo.EXPECT().
		GetCampaignBySlug(mock.Anything, "ramadan-iftar").
		Return(camp, nil)

	var gotParams port.CheckoutSessionParams
	provider.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("port.CheckoutSessionParams")).
		Run(func(ctx context.Context, params port.CheckoutSessionParams) {
			gotParams = params
		}).
		Return(&port.CheckoutSession{ID: "cs_123", URL: "https://pay.example/cs_123"}, nil)

	var stored *domain.Donation
	repo.EXPECT().
		CreateDonation(mock.Anything, mock.AnythingOfType("*domain.Donation")).
		Run(func(ctx context.Context, d *domain.Donation) {
			stored = d
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo, provider).WithClock(fixedClock)

	resp, err := svc.CreateCheckout(context.Background(), port.CheckoutRequest{
		CampaignSlug: "ramadan-iftar",
		DailyAmount:  decimal.NewFromInt(10),
		DonorName:    "Aisha​ Khan",
		Message:      "For my parents",
	})
	if err != nil {
		t.Fatalf("CreateCheckout error: %v", err)
	}
	if resp.CheckoutURL != "https://pay.example/cs_123" {
		t.Fatalf("unexpected checkout url %q", resp.CheckoutURL)
	}
	if resp.Billing.BillingStartDate != "2025-03-16" || !resp.Billing.IsLateJoin {
		t.Fatalf("unexpected billing preview %+v", resp.Billing)
	}
	if resp.Billing.RemainingDays == nil || *resp.Billing.RemainingDays != 5 {
		t.Fatalf("remaining days: %v", resp.Billing.RemainingDays)
	}
	if resp.Billing.TotalAmount == nil || !resp.Billing.TotalAmount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("total amount: %v", resp.Billing.TotalAmount)
	}

	// metadata must be sanitized before it reaches the provider
	if gotParams.DonorName != "Aisha Khan" {
		t.Errorf("donor name not sanitized: %q", gotParams.DonorName)
	}
	if gotParams.Message != "Formy parents" {
		t.Errorf("message not sanitized: %q", gotParams.Message)
	}
	if gotParams.Reference != resp.DonationID {
		t.Errorf("session reference %q != donation id %q", gotParams.Reference, resp.DonationID)
	}

	if stored == nil {
		t.Fatal("donation not stored")
	}
	if stored.Status != domain.DonationStatusPending {
		t.Errorf("donation status: %q", stored.Status)
	}
	if stored.ProviderSessionID != "cs_123" {
		t.Errorf("donation session id: %q", stored.ProviderSessionID)
	}
	if stored.RemainingDays == nil || *stored.RemainingDays != 5 {
		t.Errorf("donation remaining days: %v", stored.RemainingDays)
	}
}

func TestCreateCheckoutUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	repo.EXPECT().
		GetCampaignBySlug(mock.Anything, "missing").
		Return(nil, nil)

	svc := NewCampaignUseCase(repo, provider).WithClock(fixedClock)

	_, err := svc.CreateCheckout(context.Background(), port.CheckoutRequest{
		CampaignSlug: "missing",
		DailyAmount:  decimal.NewFromInt(5),
	})
	if !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestCreateCheckoutSignupClosed(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	camp := boundedCampaign(t)
	signupEnd := date(t, "2025-03-12")
	camp.Schedule.SignupEndDate = &signupEnd

	repo.EXPECT().
		GetCampaignBySlug(mock.Anything, camp.Slug).
		Return(camp, nil)

	svc := NewCampaignUseCase(repo, provider).WithClock(fixedClock)

	_, err := svc.CreateCheckout(context.Background(), port.CheckoutRequest{
		CampaignSlug: camp.Slug,
		DailyAmount:  decimal.NewFromInt(5),
	})
	var rejection *port.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rejection.Reason != "Signup for this campaign has closed" {
		t.Errorf("reason: %q", rejection.Reason)
	}
}

func TestCreateCheckoutInvalidAmount(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockPaymentProvider(t)
	camp := boundedCampaign(t)

	repo.EXPECT().
		GetCampaignBySlug(mock.Anything, camp.Slug).
		Return(camp, nil)

	svc := NewCampaignUseCase(repo, provider).WithClock(fixedClock)

	// 7 is not a preset and custom amounts are disabled
	_, err := svc.CreateCheckout(context.Background(), port.CheckoutRequest{
		CampaignSlug: camp.Slug,
		DailyAmount:  decimal.NewFromInt(7),
	})
	var rejection *port.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rejection.Reason != "Please select a valid preset amount" {
		t.Errorf("reason: %q", rejection.Reason)
	}
}

func TestCreateCheckoutNoBillableDays(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	// campaign ends today but signup stays open through the end date, so
	// the billing check is what refuses the join
	camp := boundedCampaign(t)
	end := date(t, "2025-03-15")
	camp.Schedule.EndDate = &end

	repo.EXPECT().
		GetCampaignBySlug(mock.Anything, camp.Slug).
		Return(camp, nil)

	svc := NewCampaignUseCase(repo, provider).WithClock(fixedClock)

	_, err := svc.CreateCheckout(context.Background(), port.CheckoutRequest{
		CampaignSlug: camp.Slug,
		DailyAmount:  decimal.NewFromInt(5),
	})
	var rejection *port.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rejection.Reason != "This campaign has no billable days remaining" {
		t.Errorf("reason: %q", rejection.Reason)
	}
}

func TestGetCampaignWithBillingPreview(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockPaymentProvider(t)
	camp := boundedCampaign(t)

	repo.EXPECT().
		GetCampaignBySlug(mock.Anything, camp.Slug).
		Return(camp, nil)

	svc := NewCampaignUseCase(repo, provider).WithClock(fixedClock)

	daily := decimal.NewFromInt(20)
	card, err := svc.GetCampaign(context.Background(), camp.Slug, &daily)
	if err != nil {
		t.Fatalf("GetCampaign error: %v", err)
	}
	if card.Status.Code != domain.StatusActive {
		t.Errorf("status: %+v", card.Status)
	}
	if card.DateRange != "Mar 10 - Mar 20, 2025" {
		t.Errorf("date range: %q", card.DateRange)
	}
	if !card.SignupOpen {
		t.Error("expected signup open")
	}
	if card.Billing == nil {
		t.Fatal("expected billing preview")
	}
	if card.Billing.TotalAmount == nil || !card.Billing.TotalAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("preview total: %v", card.Billing.TotalAmount)
	}
}

func TestListCampaigns(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	provider := mocks.NewMockPaymentProvider(t)

	bounded := *boundedCampaign(t)
	ongoing := domain.Campaign{
		ID:       uuid.New(),
		Slug:     "zakat-general",
		Title:    "General Zakat",
		Currency: "usd",
		Schedule: domain.Schedule{StartDate: date(t, "2025-01-01"), IsOngoing: true},
		Amounts:  domain.AmountRules{Minimum: decimal.NewFromInt(1), AllowCustom: true},
	}

	repo.EXPECT().
		ListCampaigns(mock.Anything).
		Return([]domain.Campaign{bounded, ongoing}, nil)

	svc := NewCampaignUseCase(repo, provider).WithClock(fixedClock)

	cards, err := svc.ListCampaigns(context.Background())
	if err != nil {
		t.Fatalf("ListCampaigns error: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Status.Code != domain.StatusActive {
		t.Errorf("bounded status: %+v", cards[0].Status)
	}
	if cards[1].Status.Code != domain.StatusOngoing {
		t.Errorf("ongoing status: %+v", cards[1].Status)
	}
	if cards[1].DateRange != "Jan 1 (Ongoing)" {
		t.Errorf("ongoing date range: %q", cards[1].DateRange)
	}
}
