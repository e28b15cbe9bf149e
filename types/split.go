package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitEvent is one stock split. Multiplier/Divisor is the share-count
// scaling factor (2/1 for a two-for-one split, 1/10 for a reverse split).
// Divisor must be non-zero; the resolver rejects split lists that violate
// this before they reach the ledger.
type SplitEvent struct {
	Symbol        string
	ExecutionDate time.Time
	Multiplier    decimal.Decimal
	Divisor       decimal.Decimal
}

// Ratio returns the share-count scaling factor.
func (s SplitEvent) Ratio() decimal.Decimal {
	return s.Multiplier.Div(s.Divisor)
}
