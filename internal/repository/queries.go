package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type instrumentRow struct {
	Ref    string
	Symbol string
	Name   string
}

type splitRow struct {
	Ref           string
	ExecutionDate time.Time
	Multiplier    decimal.Decimal
	Divisor       decimal.Decimal
}

type queries struct {
	pool *pgxpool.Pool
}

const getInstrumentSQL = `SELECT ref, symbol, name FROM instruments WHERE ref = $1`

func (q *queries) GetInstrument(ctx context.Context, ref string) (instrumentRow, error) {
	var row instrumentRow
	err := q.pool.QueryRow(ctx, getInstrumentSQL, ref).
		Scan(&row.Ref, &row.Symbol, &row.Name)
	return row, err
}

const getSplitsSQL = `SELECT instrument_ref, execution_date, multiplier, divisor
FROM splits WHERE instrument_ref = $1 ORDER BY execution_date`

func (q *queries) GetSplits(ctx context.Context, ref string) ([]splitRow, error) {
	rows, err := q.pool.Query(ctx, getSplitsSQL, ref)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []splitRow
	for rows.Next() {
		var row splitRow
		if err := rows.Scan(&row.Ref, &row.ExecutionDate, &row.Multiplier, &row.Divisor); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
