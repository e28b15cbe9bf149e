package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PositionSnapshot is a read-only view of one position. AvgCost is only
// meaningful when AvgCostOK is true; a flat or overdrawn position has no
// defined average cost.
type PositionSnapshot struct {
	Symbol      string
	Quantity    decimal.Decimal
	TotalCost   decimal.Decimal
	AvgCost     decimal.Decimal
	AvgCostOK   bool
	LastEventAt time.Time
}

// PortfolioView lists every position in first-seen symbol order.
type PortfolioView struct {
	Positions []PositionSnapshot
}
