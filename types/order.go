package types

type Side string

type OrderState string

const (
	OrderStateFilled    OrderState = "filled"
	OrderStateCancelled OrderState = "cancelled"
	OrderStateQueued    OrderState = "queued"
	OrderStateFailed    OrderState = "failed"

	SideTypeBuy  Side = "BUY"
	SideTypeSell Side = "SELL"
)

// RawOrder is one order record exactly as the brokerage export delivers it:
// every field a string, price sometimes blank in favor of average_price.
type RawOrder struct {
	Instrument   string `json:"instrument"`
	Side         string `json:"side"`
	Quantity     string `json:"quantity"`
	Price        string `json:"price"`
	AveragePrice string `json:"average_price"`
	CreatedAt    string `json:"created_at"`
	State        string `json:"state"`
}
