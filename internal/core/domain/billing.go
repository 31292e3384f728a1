package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingInfo describes when a new subscriber's recurring daily charge
// begins and, for bounded campaigns, how much they will be charged in
// total. RemainingDays and TotalAmount are nil for unbounded campaigns and
// for joiners with no billable days left; the latter case must be rejected
// by the caller, this function never errors.
type BillingInfo struct {
	BillingStartDate time.Time
	IsLateJoin       bool
	RemainingDays    *int
	TotalAmount      *decimal.Decimal
}

// BillingAt computes the billing breakdown for a subscriber joining at the
// given instant. A joiner before the campaign start is billed from the
// start date; a late joiner is not charged for elapsed days and starts on
// the next UTC calendar day. For bounded campaigns the day count includes
// both the billing-start day and the end day.
func (s Schedule) BillingAt(dailyAmount decimal.Decimal, now time.Time) BillingInfo {
	start := dateOf(s.StartDate)
	info := BillingInfo{BillingStartDate: start}
	if !now.UTC().Before(start) {
		info.BillingStartDate = dateOf(now).Add(24 * time.Hour)
		info.IsLateJoin = true
	}
	if s.EndDate == nil {
		return info
	}

	// both bounds are UTC midnights, so the division is exact
	endBoundary := dateOf(*s.EndDate).Add(24 * time.Hour)
	days := int(endBoundary.Sub(info.BillingStartDate) / (24 * time.Hour))
	if days <= 0 {
		return info
	}
	total := dailyAmount.Mul(decimal.NewFromInt(int64(days)))
	info.RemainingDays = &days
	info.TotalAmount = &total
	return info
}
