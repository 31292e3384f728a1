package domain

import (
	"fmt"
	"time"
)

// StatusCode identifies a campaign lifecycle state.
type StatusCode string

const (
	StatusUpcoming   StatusCode = "upcoming"
	StatusActive     StatusCode = "active"
	StatusEndingSoon StatusCode = "ending-soon"
	StatusEnded      StatusCode = "ended"
	StatusOngoing    StatusCode = "ongoing"
)

// Status is the resolved lifecycle state of a campaign together with a
// display label and a color token. Label and Color are opaque presentation
// hints for the caller.
type Status struct {
	Code  StatusCode `json:"code"`
	Label string     `json:"label"`
	Color string     `json:"color"`
}

const (
	colorBlue  = "blue"
	colorGreen = "green"
	colorAmber = "amber"
	colorGray  = "gray"
	colorTeal  = "teal"
)

// endingSoonWindow is the number of remaining days at which an active
// campaign starts being reported as ending-soon.
const endingSoonWindow = 3

// StatusAt resolves the campaign status at the given instant. The branches
// overlap, so evaluation order matters: a past EndDate wins over IsOngoing,
// meaning a campaign inconsistently flagged with both is reported as ended.
func (s Schedule) StatusAt(now time.Time) Status {
	today := dateOf(now)
	start := dateOf(s.StartDate)

	if today.Before(start) {
		daysUntil := ceilDays(start.Sub(now.UTC()))
		if daysUntil == 1 {
			return Status{Code: StatusUpcoming, Label: "Starts tomorrow", Color: colorBlue}
		}
		return Status{Code: StatusUpcoming, Label: fmt.Sprintf("Starts in %d days", daysUntil), Color: colorBlue}
	}

	if s.EndDate != nil && today.After(dateOf(*s.EndDate)) {
		return Status{Code: StatusEnded, Label: "Ended", Color: colorGray}
	}

	if s.IsOngoing || s.EndDate == nil {
		return Status{Code: StatusOngoing, Label: "Ongoing", Color: colorTeal}
	}

	// bounded and currently active; count days until the end of the last
	// active day
	daysRemaining := ceilDays(dateOf(*s.EndDate).Add(24 * time.Hour).Sub(now.UTC()))
	if daysRemaining <= endingSoonWindow {
		if daysRemaining == 1 {
			return Status{Code: StatusEndingSoon, Label: "Ends tomorrow", Color: colorAmber}
		}
		return Status{Code: StatusEndingSoon, Label: fmt.Sprintf("%d days left", daysRemaining), Color: colorAmber}
	}
	return Status{Code: StatusActive, Label: fmt.Sprintf("%d days remaining", daysRemaining), Color: colorGreen}
}

// DateRange formats the campaign dates for display, e.g. "Mar 10 (Ongoing)"
// or "Mar 10 - Mar 20, 2025".
func (s Schedule) DateRange() string {
	start := s.StartDate.UTC().Format("Jan 2")
	if s.IsOngoing || s.EndDate == nil {
		return start + " (Ongoing)"
	}
	return start + " - " + s.EndDate.UTC().Format("Jan 2, 2006")
}
