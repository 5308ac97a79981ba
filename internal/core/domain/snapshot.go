package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthSnapshot is a point-in-time record of a user's net worth, kept so
// the summary can report month-over-month change. At most one snapshot is
// recorded per user per calendar day.
type NetWorthSnapshot struct {
	SnapshotID string          `json:"snapshotID"`
	UserID     string          `json:"userID"`
	NetWorth   decimal.Decimal `json:"netWorth"`
	AsOf       time.Time       `json:"asOf"`
}
