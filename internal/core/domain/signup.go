package domain

import (
	"fmt"
	"time"
)

// SignupCheck reports whether new subscribers may join a campaign. Reason
// is a user-facing message set only when signup is closed.
type SignupCheck struct {
	Open   bool
	Reason string
}

// SignupAt checks the signup window at the given instant. The signup end
// falls back to the campaign end date when no explicit SignupEndDate is
// set; a campaign with neither is always open.
func (s Schedule) SignupAt(now time.Time) SignupCheck {
	today := dateOf(now)

	if s.SignupStartDate != nil && dateOf(*s.SignupStartDate).After(today) {
		return SignupCheck{Reason: fmt.Sprintf("Signup opens on %s", s.SignupStartDate.UTC().Format("2006-01-02"))}
	}

	signupEnd := s.SignupEndDate
	if signupEnd == nil {
		signupEnd = s.EndDate
	}
	if signupEnd != nil && dateOf(*signupEnd).Before(today) {
		return SignupCheck{Reason: "Signup for this campaign has closed"}
	}

	return SignupCheck{Open: true}
}
