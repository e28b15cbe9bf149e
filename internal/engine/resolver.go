package engine

import (
	"context"
	"fmt"
	"sync"

	"costbase/types"

	"golang.org/x/sync/singleflight"
)

type resolved struct {
	symbol string
	splits *SplitQueue
}

// Resolver caches instrument lookups by ref. The first lookup performs two
// upstream fetches (instrument metadata, split list); concurrent lookups for
// the same unresolved ref collapse into a single in-flight fetch pair.
// Failures are not cached, so a later lookup may try again.
type Resolver struct {
	source datasource

	mu    sync.Mutex
	cache map[string]resolved
	group singleflight.Group
}

func NewResolver(source datasource) *Resolver {
	return &Resolver{
		source: source,
		cache:  make(map[string]resolved),
	}
}

// Resolve returns the ticker symbol for an instrument ref together with its
// pending split queue. The queue is the live one shared with the ledger:
// splits consumed there are gone for every caller.
func (r *Resolver) Resolve(ctx context.Context, ref string) (string, *SplitQueue, error) {
	r.mu.Lock()
	if hit, ok := r.cache[ref]; ok {
		r.mu.Unlock()
		return hit.symbol, hit.splits, nil
	}
	r.mu.Unlock()

	v, err, _ := r.group.Do(ref, func() (any, error) {
		return r.fetch(ctx, ref)
	})
	if err != nil {
		return "", nil, err
	}
	res := v.(resolved)
	return res.symbol, res.splits, nil
}

func (r *Resolver) fetch(ctx context.Context, ref string) (resolved, error) {
	instrument, err := r.source.GetInstrument(ctx, ref)
	if err != nil {
		return resolved{}, fmt.Errorf("%w: instrument %s: %v", SymbolResolutionErr, ref, err)
	}
	raw, err := r.source.GetSplits(ctx, ref)
	if err != nil {
		return resolved{}, fmt.Errorf("%w: splits for %s: %v", SymbolResolutionErr, instrument.Symbol, err)
	}

	events := make([]types.SplitEvent, 0, len(raw))
	for _, s := range raw {
		if s.Divisor.IsZero() {
			return resolved{}, fmt.Errorf("%w: split for %s on %s has zero divisor",
				SymbolResolutionErr, instrument.Symbol, s.ExecutionDate)
		}
		s.Symbol = instrument.Symbol
		events = append(events, s)
	}

	res := resolved{symbol: instrument.Symbol, splits: NewSplitQueue(events)}
	r.mu.Lock()
	r.cache[ref] = res
	r.mu.Unlock()
	return res, nil
}
