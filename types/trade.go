package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is one filled order after normalization. It is never mutated after
// creation; once ingested it belongs to the transaction history of the
// position it was folded into.
type Trade struct {
	InstrumentRef string
	Symbol        string
	Side          Side
	Quantity      decimal.Decimal
	Price         decimal.Decimal
	ExecutedAt    time.Time
}

// Cost is the cash value of the trade at its fill price.
func (t Trade) Cost() decimal.Decimal {
	return t.Price.Mul(t.Quantity)
}
