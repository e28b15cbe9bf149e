package engine

import (
	"context"

	"costbase/types"
)

// datasource is the upstream the resolver fetches instrument metadata and
// split history from.
type datasource interface {
	GetInstrument(ctx context.Context, ref string) (*types.Instrument, error)
	GetSplits(ctx context.Context, ref string) ([]types.SplitEvent, error)
}

// orderFeed delivers the raw order history, in whatever order the source
// keeps it. The engine sorts by execution time before ingesting.
type orderFeed interface {
	Orders() ([]types.RawOrder, error)
}
