package engine

import "errors"

// Global error declarations. Per-record errors: a rejected order never stops
// processing of the remaining orders.
var (
	InvalidNumericFieldErr = errors.New("invalid numeric field in order record")
	InvalidTimestampErr    = errors.New("invalid timestamp in order record")
	UnknownSideErr         = errors.New("unknown order side")
	SymbolResolutionErr    = errors.New("symbol resolution failed")
	NoPositionSellErr      = errors.New("sell with no open position")
	StaleTradeErr          = errors.New("trade is older than the position watermark")
)
