package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign represents a recurring-donation campaign. Amounts are daily
// donation amounts in the campaign currency.
type Campaign struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Description string
	Currency    string
	Schedule    Schedule
	Amounts     AmountRules
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Schedule holds the date fields that drive a campaign's lifecycle. All
// dates are calendar days anchored to UTC midnight; day arithmetic in this
// package uses UTC day boundaries so results do not depend on the host
// timezone.
type Schedule struct {
	// StartDate is the first active day of the campaign.
	StartDate time.Time
	// EndDate is the last active day, inclusive. Nil means unbounded.
	EndDate *time.Time
	// IsOngoing marks a campaign that never ends even when EndDate is set.
	// A past EndDate still wins over this flag, see StatusAt.
	IsOngoing bool
	// SignupStartDate is the first day new subscribers may join. Nil means
	// signup opens with the campaign.
	SignupStartDate *time.Time
	// SignupEndDate is the last day new subscribers may join. Nil falls
	// back to EndDate.
	SignupEndDate *time.Time
}

// AmountRules constrains the daily amount a subscriber may pick.
type AmountRules struct {
	Minimum     decimal.Decimal
	Maximum     *decimal.Decimal
	Presets     []decimal.Decimal
	AllowCustom bool
}

// ParseDate parses an ISO YYYY-MM-DD string into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// dateOf projects an instant onto its UTC calendar day.
func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ceilDays rounds a duration up to whole days.
func ceilDays(d time.Duration) int {
	days := d / (24 * time.Hour)
	if d%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}
