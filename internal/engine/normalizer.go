package engine

import (
	"fmt"
	"strings"
	"time"

	"costbase/types"

	"github.com/shopspring/decimal"
)

// Normalize turns one raw export row into a typed Trade. Orders that never
// filled return (nil, nil): filtering them out is expected, not an error.
// The trade's Symbol is left empty; the resolver fills it in.
func Normalize(raw types.RawOrder) (*types.Trade, error) {
	if !strings.EqualFold(raw.State, string(types.OrderStateFilled)) {
		return nil, nil
	}

	var side types.Side
	switch strings.ToUpper(raw.Side) {
	case string(types.SideTypeBuy):
		side = types.SideTypeBuy
	case string(types.SideTypeSell):
		side = types.SideTypeSell
	default:
		return nil, fmt.Errorf("side %q: %w", raw.Side, UnknownSideErr)
	}

	quantity, err := decimal.NewFromString(raw.Quantity)
	if err != nil || !quantity.IsPositive() {
		return nil, fmt.Errorf("quantity %q: %w", raw.Quantity, InvalidNumericFieldErr)
	}

	// Filled orders carry the fill price in average_price; older exports only
	// set price.
	priceField := raw.AveragePrice
	if priceField == "" {
		priceField = raw.Price
	}
	price, err := decimal.NewFromString(priceField)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("price %q: %w", priceField, InvalidNumericFieldErr)
	}

	executedAt, err := time.Parse(time.RFC3339, raw.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("created_at %q: %w", raw.CreatedAt, InvalidTimestampErr)
	}

	return &types.Trade{
		InstrumentRef: raw.Instrument,
		Side:          side,
		Quantity:      quantity,
		Price:         price,
		ExecutedAt:    executedAt,
	}, nil
}
