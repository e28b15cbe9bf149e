package engine

import (
	"fmt"
	"time"

	"costbase/types"

	"github.com/shopspring/decimal"
)

// Position is the running state for one symbol. Average cost is always
// derived from TotalCost and Quantity, never stored on its own.
type Position struct {
	Symbol       string
	Quantity     decimal.Decimal
	TotalCost    decimal.Decimal
	LastEventAt  time.Time
	Transactions []types.Trade
}

// AvgCost returns the average cost per share. It is undefined (ok=false)
// when the position is flat or overdrawn.
func (p *Position) AvgCost() (decimal.Decimal, bool) {
	if !p.Quantity.IsPositive() {
		return decimal.Zero, false
	}
	return p.TotalCost.Div(p.Quantity), true
}

// Ledger folds trades and splits into per-symbol positions using adjusted
// cost base accounting. Trades must arrive in ascending ExecutedAt order;
// the watermark and the pending split queues are shared mutable state, so
// one goroutine at a time.
type Ledger struct {
	positions map[string]*Position
	order     []string // first-seen symbol order, for report output
	pending   map[string]*SplitQueue
}

func NewLedger() *Ledger {
	return &Ledger{
		positions: make(map[string]*Position),
		pending:   make(map[string]*SplitQueue),
	}
}

// Ingest applies one symbol-resolved trade. Pending splits that executed
// strictly between the position's watermark and the trade are applied first,
// each exactly once. A rejected trade leaves the ledger untouched.
func (l *Ledger) Ingest(t types.Trade, pending *SplitQueue) error {
	if t.Side != types.SideTypeBuy && t.Side != types.SideTypeSell {
		return fmt.Errorf("%s: %w", t.Symbol, UnknownSideErr)
	}

	pos := l.positions[t.Symbol]
	if pos == nil {
		if t.Side == types.SideTypeSell {
			return fmt.Errorf("%s: sell %s at %s: %w",
				t.Symbol, t.Quantity, t.ExecutedAt.Format(time.RFC3339), NoPositionSellErr)
		}
		l.positions[t.Symbol] = &Position{
			Symbol:       t.Symbol,
			Quantity:     t.Quantity,
			TotalCost:    t.Cost(),
			LastEventAt:  t.ExecutedAt,
			Transactions: []types.Trade{t},
		}
		l.order = append(l.order, t.Symbol)
		if pending != nil {
			l.pending[t.Symbol] = pending
		}
		return nil
	}

	if t.ExecutedAt.Before(pos.LastEventAt) {
		return fmt.Errorf("%s: trade at %s behind watermark %s: %w",
			t.Symbol, t.ExecutedAt.Format(time.RFC3339),
			pos.LastEventAt.Format(time.RFC3339), StaleTradeErr)
	}

	// A sell from a flat position would scale cost by remaining/0; treat it
	// the same as selling with no position at all.
	if t.Side == types.SideTypeSell && pos.Quantity.IsZero() {
		return fmt.Errorf("%s: sell %s from flat position: %w",
			t.Symbol, t.Quantity, NoPositionSellErr)
	}

	if pending != nil {
		l.pending[t.Symbol] = pending
		for _, e := range pending.takeBetween(pos.LastEventAt, t.ExecutedAt) {
			applySplit(pos, e)
		}
	}

	switch t.Side {
	case types.SideTypeBuy:
		pos.Quantity = pos.Quantity.Add(t.Quantity)
		pos.TotalCost = pos.TotalCost.Add(t.Cost())
	case types.SideTypeSell:
		// Adjusted cost base: a sell removes cost proportionally to shares
		// sold, so the average cost per share does not move.
		remaining := pos.Quantity.Sub(t.Quantity)
		pos.TotalCost = pos.TotalCost.Mul(remaining.Div(pos.Quantity))
		pos.Quantity = remaining
	}
	pos.LastEventAt = t.ExecutedAt
	pos.Transactions = append(pos.Transactions, t)
	return nil
}

// FinalizeSplits applies, once per symbol, every still-pending split that
// executed strictly after the position's last event. Call it once after all
// trades have been ingested; splits already consumed during catch-up are
// gone from the queues and cannot be applied again.
func (l *Ledger) FinalizeSplits() {
	for _, symbol := range l.order {
		queue := l.pending[symbol]
		if queue == nil {
			continue
		}
		pos := l.positions[symbol]
		for _, e := range queue.takeFrom(pos.LastEventAt) {
			applySplit(pos, e)
		}
	}
}

// applySplit scales the share count and advances the watermark. Total cost
// is unchanged by a split; only the derived average moves.
func applySplit(pos *Position, e types.SplitEvent) {
	pos.Quantity = pos.Quantity.Mul(e.Ratio())
	pos.LastEventAt = e.ExecutionDate
}

// Summary returns a snapshot of one position.
func (l *Ledger) Summary(symbol string) (types.PositionSnapshot, bool) {
	pos, ok := l.positions[symbol]
	if !ok {
		return types.PositionSnapshot{}, false
	}
	return snapshot(pos), true
}

// History returns the trades applied to one symbol, oldest first.
func (l *Ledger) History(symbol string) []types.Trade {
	pos, ok := l.positions[symbol]
	if !ok {
		return nil
	}
	return append([]types.Trade(nil), pos.Transactions...)
}

// Portfolio returns every position in first-seen symbol order.
func (l *Ledger) Portfolio() types.PortfolioView {
	view := types.PortfolioView{
		Positions: make([]types.PositionSnapshot, 0, len(l.order)),
	}
	for _, symbol := range l.order {
		view.Positions = append(view.Positions, snapshot(l.positions[symbol]))
	}
	return view
}

func snapshot(pos *Position) types.PositionSnapshot {
	avg, ok := pos.AvgCost()
	return types.PositionSnapshot{
		Symbol:      pos.Symbol,
		Quantity:    pos.Quantity,
		TotalCost:   pos.TotalCost,
		AvgCost:     avg,
		AvgCostOK:   ok,
		LastEventAt: pos.LastEventAt,
	}
}
