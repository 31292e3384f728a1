package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Seed inserts demo donation campaigns. Intended for local development; all
// inserts are idempotent on the slug.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	type seedCampaign struct {
		slug        string
		title       string
		description string
		start       time.Time
		end         *time.Time
		isOngoing   bool
		signupEnd   *time.Time
		minimum     decimal.Decimal
		maximum     *decimal.Decimal
		presets     []decimal.Decimal
		allowCustom bool
	}

	now := time.Now().UTC()
	day := func(offset int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	datePtr := func(t time.Time) *time.Time { return &t }
	maxAmount := decimal.NewFromInt(500)

	campaigns := []seedCampaign{
		{
			slug:        "iftar-meals",
			title:       "Daily Iftar Meals",
			description: "Sponsor iftar meals for the community every evening.",
			start:       day(-5),
			end:         datePtr(day(25)),
			minimum:     decimal.NewFromInt(1),
			maximum:     &maxAmount,
			presets:     []decimal.Decimal{decimal.NewFromInt(5), decimal.NewFromInt(10), decimal.NewFromInt(20)},
		},
		{
			slug:        "zakat-general",
			title:       "General Zakat Fund",
			description: "Ongoing zakat distribution to families in need.",
			start:       day(-90),
			isOngoing:   true,
			minimum:     decimal.NewFromInt(1),
			allowCustom: true,
		},
		{
			slug:        "new-roof",
			title:       "Prayer Hall Roof Repair",
			description: "Help us repair the prayer hall roof before winter.",
			start:       day(10),
			end:         datePtr(day(40)),
			signupEnd:   datePtr(day(35)),
			minimum:     decimal.NewFromInt(2),
			presets:     []decimal.Decimal{decimal.NewFromInt(10), decimal.NewFromInt(25), decimal.NewFromInt(50)},
			allowCustom: true,
		},
	}

	for _, c := range campaigns {
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, slug, title, description, currency, start_date, end_date, is_ongoing,
     signup_start_date, signup_end_date, minimum_amount, maximum_amount,
     preset_amounts, allow_custom_amount, created_at, updated_at)
VALUES ($1,$2,$3,$4,'usd',$5,$6,$7,NULL,$8,$9,$10,$11,$12,now(),now())
ON CONFLICT (slug) DO NOTHING`,
			uuid.New(), c.slug, c.title, c.description, c.start, c.end,
			c.isOngoing, c.signupEnd, c.minimum, c.maximum, c.presets, c.allowCustom)
		if err != nil {
			return err
		}
	}
	return nil
}
