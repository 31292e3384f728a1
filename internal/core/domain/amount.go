package domain

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// AmountCheck is the result of validating a daily donation amount. Error
// is a user-facing message set only when the amount is rejected.
type AmountCheck struct {
	Valid bool
	Error string
}

// ValidateAmount checks a daily amount against the campaign's rules. Rules
// are evaluated in order and the first failure wins: below minimum, above
// maximum, then preset membership when custom amounts are disabled.
func ValidateAmount(amount decimal.Decimal, rules AmountRules) AmountCheck {
	if amount.LessThan(rules.Minimum) {
		return AmountCheck{Error: fmt.Sprintf("Minimum daily amount is $%s", rules.Minimum)}
	}
	if rules.Maximum != nil && amount.GreaterThan(*rules.Maximum) {
		return AmountCheck{Error: fmt.Sprintf("Maximum daily amount is $%s", rules.Maximum)}
	}
	if !rules.AllowCustom && len(rules.Presets) > 0 {
		ok := lo.ContainsBy(rules.Presets, func(p decimal.Decimal) bool {
			return p.Equal(amount)
		})
		if !ok {
			return AmountCheck{Error: "Please select a valid preset amount"}
		}
	}
	return AmountCheck{Valid: true}
}
