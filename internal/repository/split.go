package repository

import (
	"context"

	"costbase/types"
)

// GetSplits returns the instrument's split history, oldest first. An
// instrument with no splits is a normal empty result, not an error. The
// symbol is left empty; the resolver attaches it after the instrument
// lookup.
func (db *Database) GetSplits(ctx context.Context, ref string) ([]types.SplitEvent, error) {
	rows, err := db.splits.GetSplits(ctx, ref)
	if err != nil {
		return nil, err
	}
	return convertSplits(rows), nil
}

func convertSplits(rows []splitRow) []types.SplitEvent {
	var events []types.SplitEvent
	for _, row := range rows {
		events = append(events, types.SplitEvent{
			ExecutionDate: row.ExecutionDate,
			Multiplier:    row.Multiplier,
			Divisor:       row.Divisor,
		})
	}
	return events
}
