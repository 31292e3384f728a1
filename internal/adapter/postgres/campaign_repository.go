package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"amana-donations/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Amount columns are numeric and scan into shopspring decimals
// via the codec registered by db.NewPostgresPool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
    id,
    slug,
    title,
    description,
    currency,
    start_date,
    end_date,
    is_ongoing,
    signup_start_date,
    signup_end_date,
    minimum_amount,
    maximum_amount,
    preset_amounts,
    allow_custom_amount,
    created_at,
    updated_at`

// GetCampaignBySlug returns the campaign published under the given slug, or
// nil when no such campaign exists.
func (r *CampaignRepository) GetCampaignBySlug(ctx context.Context, slug string) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns WHERE slug = $1`, slug)
	if err != nil {
		return nil, err
	}
	camp, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &camp, nil
}

// ListCampaigns returns all published campaigns ordered by start date.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+` FROM campaigns ORDER BY start_date, slug`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// CreateDonation stores a pending donation created during checkout.
func (r *CampaignRepository) CreateDonation(ctx context.Context, donation *domain.Donation) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO donations
    (id, campaign_id, donor_name, message, daily_amount, billing_start_date,
     is_late_join, remaining_days, total_amount, provider_session_id, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		donation.ID,
		donation.CampaignID,
		donation.DonorName,
		donation.Message,
		donation.DailyAmount,
		donation.BillingStartDate,
		donation.IsLateJoin,
		donation.RemainingDays,
		donation.TotalAmount,
		donation.ProviderSessionID,
		donation.Status,
		donation.CreatedAt,
	)
	return err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Title,
		&c.Description,
		&c.Currency,
		&c.Schedule.StartDate,
		&c.Schedule.EndDate,
		&c.Schedule.IsOngoing,
		&c.Schedule.SignupStartDate,
		&c.Schedule.SignupEndDate,
		&c.Amounts.Minimum,
		&c.Amounts.Maximum,
		&c.Amounts.Presets,
		&c.Amounts.AllowCustom,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
