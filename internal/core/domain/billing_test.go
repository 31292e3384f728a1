package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestBillingAtBeforeStart(t *testing.T) {
	schedule := Schedule{StartDate: mustDate(t, "2025-03-10"), EndDate: datePtr(t, "2025-03-20")}
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	info := schedule.BillingAt(decimal.NewFromInt(10), now)

	require.False(t, info.IsLateJoin)
	require.Equal(t, mustDate(t, "2025-03-10"), info.BillingStartDate)
	require.NotNil(t, info.RemainingDays)
	require.Equal(t, 11, *info.RemainingDays)
	require.NotNil(t, info.TotalAmount)
	require.True(t, info.TotalAmount.Equal(decimal.NewFromInt(110)), "total %s", info.TotalAmount)
}

func TestBillingAtLateJoin(t *testing.T) {
	schedule := Schedule{StartDate: mustDate(t, "2025-03-10"), EndDate: datePtr(t, "2025-03-20")}

	info := schedule.BillingAt(decimal.NewFromInt(10), refNow)

	// a mid-campaign joiner is first charged on the next calendar day
	require.True(t, info.IsLateJoin)
	require.Equal(t, mustDate(t, "2025-03-16"), info.BillingStartDate)
	require.NotNil(t, info.RemainingDays)
	require.Equal(t, 5, *info.RemainingDays)
	require.True(t, info.TotalAmount.Equal(decimal.NewFromInt(50)))
}

func TestBillingAtJoinOnStartDayIsLate(t *testing.T) {
	schedule := Schedule{StartDate: mustDate(t, "2025-03-15"), EndDate: datePtr(t, "2025-03-20")}

	info := schedule.BillingAt(decimal.NewFromInt(3), refNow)

	require.True(t, info.IsLateJoin)
	require.Equal(t, mustDate(t, "2025-03-16"), info.BillingStartDate)
	require.Equal(t, 5, *info.RemainingDays)
	require.True(t, info.TotalAmount.Equal(decimal.NewFromInt(15)))
}

func TestBillingAtNoBillableDays(t *testing.T) {
	// joining on the campaign's last day pushes billing past the end
	schedule := Schedule{StartDate: mustDate(t, "2025-03-01"), EndDate: datePtr(t, "2025-03-15")}

	info := schedule.BillingAt(decimal.NewFromInt(10), refNow)

	require.True(t, info.IsLateJoin)
	require.Nil(t, info.RemainingDays)
	require.Nil(t, info.TotalAmount)
}

func TestBillingAtUnbounded(t *testing.T) {
	schedule := Schedule{StartDate: mustDate(t, "2025-03-01")}

	info := schedule.BillingAt(decimal.NewFromInt(10), refNow)

	require.True(t, info.IsLateJoin)
	require.Nil(t, info.RemainingDays)
	require.Nil(t, info.TotalAmount)
}

func TestBillingTotalMatchesDailyTimesDays(t *testing.T) {
	schedule := Schedule{StartDate: mustDate(t, "2025-03-10"), EndDate: datePtr(t, "2025-04-10")}
	daily := decimal.RequireFromString("7.50")

	info := schedule.BillingAt(daily, refNow)

	require.NotNil(t, info.RemainingDays)
	want := daily.Mul(decimal.NewFromInt(int64(*info.RemainingDays)))
	require.True(t, info.TotalAmount.Equal(want))
}
