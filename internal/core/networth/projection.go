package networth

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nwtrack/networth_backend/internal/core/domain"
)

const (
	daysPerMonth = 30
	daysPerYear  = 365
)

// GoalProgress computes the projection for a goal against its stored
// CurrentAmount snapshot.
func GoalProgress(goal domain.Goal, now time.Time) domain.GoalProjection {
	return GoalProgressAt(goal, goal.CurrentAmount, now)
}

// GoalProgressAt is the override variant: it projects the goal against an
// externally supplied current amount (typically the live net-worth figure)
// instead of the goal's stored snapshot.
func GoalProgressAt(goal domain.Goal, current decimal.Decimal, now time.Time) domain.GoalProjection {
	days := DaysUntil(now, goal.TargetDate)
	return domain.GoalProjection{
		Percent:       ProgressPercent(current, goal.TargetAmount),
		TimeRemaining: FormatTimeRemaining(days),
		MonthlyTarget: MonthlyTarget(current, goal.TargetAmount, days),
	}
}

// ProgressPercent returns min(current/target*100, 100). A non-positive target
// means "no meaningful target" and yields 0 rather than dividing by zero.
func ProgressPercent(current, target decimal.Decimal) float64 {
	if !target.IsPositive() {
		return 0
	}
	ratio, _ := current.Div(target).Float64()
	pct := ratio * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// DaysUntil returns the calendar day count from now until target, using the
// ceiling of the raw difference. A goal due tomorrow just before midnight
// still counts as one day remaining, not zero.
func DaysUntil(now, target time.Time) int {
	diff := target.Sub(now)
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return int(days)
}

// MonthlyTarget returns the amount to save per month to close the gap by the
// target date, using ceil(days/30) months remaining. Once the date has
// passed there is nothing left to schedule, so the result is zero.
func MonthlyTarget(current, target decimal.Decimal, daysRemaining int) decimal.Decimal {
	if daysRemaining <= 0 {
		return decimal.Zero
	}
	months := (daysRemaining + daysPerMonth - 1) / daysPerMonth
	return target.Sub(current).Div(decimal.NewFromInt(int64(months)))
}

// FormatTimeRemaining buckets a day count into a human-readable label.
// One rule, applied uniformly: days below a month, months below a year,
// whole years beyond that.
func FormatTimeRemaining(days int) string {
	switch {
	case days <= 0:
		return "Target date passed"
	case days < daysPerMonth:
		return pluralize(days, "day")
	case days < daysPerYear:
		return pluralize(days/daysPerMonth, "month")
	default:
		return pluralize(days/daysPerYear, "year")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
