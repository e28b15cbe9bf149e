package engine

import (
	"context"
	"sort"
	"sync"

	"costbase/types"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Upstream lookups are independent per instrument, so a handful can run at
// once while the ledger itself stays strictly sequential.
const maxConcurrentLookups = 4

// Rejection records one order that could not be applied, with enough context
// for an adapter to log, export, or abort on it.
type Rejection struct {
	InstrumentRef string
	Symbol        string
	Err           error
}

// RunReport summarizes one replay of the order history.
type RunReport struct {
	Processed int // trades folded into the ledger
	Dropped   int // never-filled orders filtered out
	Rejected  []Rejection
}

// Engine wires the feed, the resolver and the ledger into one replay of the
// full order history.
type Engine struct {
	feed     orderFeed
	resolver *Resolver
	ledger   *Ledger
	log      zerolog.Logger
}

func NewEngine(feed orderFeed, source datasource, log zerolog.Logger) *Engine {
	return &Engine{
		feed:     feed,
		resolver: NewResolver(source),
		ledger:   NewLedger(),
		log:      log,
	}
}

// Ledger exposes the read side for reporting adapters.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Run loads the raw orders, normalizes them, resolves symbols, then ingests
// every surviving trade in ascending execution order and runs the final
// split sweep. Bad records are reported and skipped; only a failing feed
// aborts the run.
func (e *Engine) Run(ctx context.Context) (*RunReport, error) {
	raws, err := e.feed.Orders()
	if err != nil {
		return nil, err
	}

	report := &RunReport{}
	trades := make([]types.Trade, 0, len(raws))
	for _, raw := range raws {
		t, err := Normalize(raw)
		if err != nil {
			e.reject(report, Rejection{InstrumentRef: raw.Instrument, Err: err})
			continue
		}
		if t == nil {
			report.Dropped++
			continue
		}
		trades = append(trades, *t)
	}

	resolveErrs := e.prefetchInstruments(ctx, trades)

	// The export is reverse-chronological; the ledger needs oldest first.
	// Sort explicitly instead of trusting upstream order.
	resolvedTrades := make([]tradeWithSplits, 0, len(trades))
	for _, t := range trades {
		if err := resolveErrs[t.InstrumentRef]; err != nil {
			e.reject(report, Rejection{InstrumentRef: t.InstrumentRef, Err: err})
			continue
		}
		symbol, splits, err := e.resolver.Resolve(ctx, t.InstrumentRef)
		if err != nil {
			e.reject(report, Rejection{InstrumentRef: t.InstrumentRef, Err: err})
			continue
		}
		t.Symbol = symbol
		resolvedTrades = append(resolvedTrades, tradeWithSplits{trade: t, splits: splits})
	}
	sort.SliceStable(resolvedTrades, func(i, j int) bool {
		return resolvedTrades[i].trade.ExecutedAt.Before(resolvedTrades[j].trade.ExecutedAt)
	})

	bar := initProgressBar(len(resolvedTrades))
	for _, rt := range resolvedTrades {
		if err := e.ledger.Ingest(rt.trade, rt.splits); err != nil {
			e.reject(report, Rejection{
				InstrumentRef: rt.trade.InstrumentRef,
				Symbol:        rt.trade.Symbol,
				Err:           err,
			})
		} else {
			report.Processed++
		}
		bar.Add(1)
	}
	e.ledger.FinalizeSplits()
	return report, nil
}

type tradeWithSplits struct {
	trade  types.Trade
	splits *SplitQueue
}

// prefetchInstruments resolves every distinct instrument ref concurrently so
// the cache is warm before ingestion starts. Failures are collected per ref;
// they reject the affected trades later without stopping the others.
func (e *Engine) prefetchInstruments(ctx context.Context, trades []types.Trade) map[string]error {
	refs := make([]string, 0)
	seen := make(map[string]bool)
	for _, t := range trades {
		if !seen[t.InstrumentRef] {
			seen[t.InstrumentRef] = true
			refs = append(refs, t.InstrumentRef)
		}
	}

	var mu sync.Mutex
	failures := make(map[string]error)
	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentLookups)
	for _, ref := range refs {
		ref := ref
		g.Go(func() error {
			if _, _, err := e.resolver.Resolve(ctx, ref); err != nil {
				mu.Lock()
				failures[ref] = err
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()
	return failures
}

func (e *Engine) reject(report *RunReport, r Rejection) {
	report.Rejected = append(report.Rejected, r)
	e.log.Warn().
		Str("instrument", r.InstrumentRef).
		Str("symbol", r.Symbol).
		Err(r.Err).
		Msg("order rejected")
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Replaying order history..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
