package port

import (
	"context"

	"amana-donations/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaign content and
// donation records. It is an outbound port in hexagonal architecture.
// Lookups return nil without an error when no row matches.
type CampaignRepository interface {
	// GetCampaignBySlug returns the campaign published under the given slug.
	GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error)
	// ListCampaigns returns all published campaigns ordered by start date.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// CreateDonation stores a pending donation created during checkout.
	CreateDonation(ctx context.Context, donation *domain.Donation) error
}
