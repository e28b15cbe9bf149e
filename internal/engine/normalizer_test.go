package engine

import (
	"errors"
	"testing"
	"time"

	"costbase/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		raw     types.RawOrder
		want    *types.Trade
		wantErr error
	}{
		{
			name: "filled buy",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "10",
				AveragePrice: "100.50", CreatedAt: "2020-01-02T15:04:05Z", State: "filled",
			},
			want: &types.Trade{
				InstrumentRef: "inst-1", Side: types.SideTypeBuy,
				Quantity: d("10"), Price: d("100.50"),
				ExecutedAt: time.Date(2020, 1, 2, 15, 4, 5, 0, time.UTC),
			},
		},
		{
			name: "filled sell falls back to price column",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "SELL", Quantity: "2.5",
				Price: "99", CreatedAt: "2020-01-02T15:04:05Z", State: "FILLED",
			},
			want: &types.Trade{
				InstrumentRef: "inst-1", Side: types.SideTypeSell,
				Quantity: d("2.5"), Price: d("99"),
				ExecutedAt: time.Date(2020, 1, 2, 15, 4, 5, 0, time.UTC),
			},
		},
		{
			name: "average_price wins over price",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "1",
				Price: "105", AveragePrice: "104.20",
				CreatedAt: "2020-01-02T15:04:05Z", State: "filled",
			},
			want: &types.Trade{
				InstrumentRef: "inst-1", Side: types.SideTypeBuy,
				Quantity: d("1"), Price: d("104.20"),
				ExecutedAt: time.Date(2020, 1, 2, 15, 4, 5, 0, time.UTC),
			},
		},
		{
			name: "cancelled order is dropped, not an error",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "10",
				Price: "100", CreatedAt: "2020-01-02T15:04:05Z", State: "cancelled",
			},
		},
		{
			name: "non-numeric quantity",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "ten",
				Price: "100", CreatedAt: "2020-01-02T15:04:05Z", State: "filled",
			},
			wantErr: InvalidNumericFieldErr,
		},
		{
			name: "zero quantity",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "0",
				Price: "100", CreatedAt: "2020-01-02T15:04:05Z", State: "filled",
			},
			wantErr: InvalidNumericFieldErr,
		},
		{
			name: "negative price",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "1",
				Price: "-5", CreatedAt: "2020-01-02T15:04:05Z", State: "filled",
			},
			wantErr: InvalidNumericFieldErr,
		},
		{
			name: "missing price fields",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "1",
				CreatedAt: "2020-01-02T15:04:05Z", State: "filled",
			},
			wantErr: InvalidNumericFieldErr,
		},
		{
			name: "unknown side",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "transfer", Quantity: "1",
				Price: "100", CreatedAt: "2020-01-02T15:04:05Z", State: "filled",
			},
			wantErr: UnknownSideErr,
		},
		{
			name: "bad timestamp",
			raw: types.RawOrder{
				Instrument: "inst-1", Side: "buy", Quantity: "1",
				Price: "100", CreatedAt: "02/01/2020", State: "filled",
			},
			wantErr: InvalidTimestampErr,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Normalize() = %+v, want dropped", got)
				}
				return
			}
			if got == nil {
				t.Fatal("Normalize() = nil, want trade")
			}
			if got.InstrumentRef != tt.want.InstrumentRef ||
				got.Side != tt.want.Side ||
				!got.Quantity.Equal(tt.want.Quantity) ||
				!got.Price.Equal(tt.want.Price) ||
				!got.ExecutedAt.Equal(tt.want.ExecutedAt) {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
			if got.Symbol != "" {
				t.Errorf("Normalize() symbol = %q, want empty before resolution", got.Symbol)
			}
		})
	}
}
