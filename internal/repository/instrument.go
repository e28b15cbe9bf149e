package repository

import (
	"context"
	"errors"
	"fmt"

	"costbase/types"

	"github.com/jackc/pgx/v5"
)

// GetInstrument retrieves instrument metadata by its opaque ref.
func (db *Database) GetInstrument(ctx context.Context, ref string) (*types.Instrument, error) {
	row, err := db.instruments.GetInstrument(ctx, ref)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("instrument %s %w", ref, InstrumentNotFoundErr)
		}
		return nil, err
	}
	return &types.Instrument{
		Ref:    row.Ref,
		Symbol: row.Symbol,
		Name:   row.Name,
	}, nil
}
