package engine

import (
	"sort"
	"time"

	"costbase/types"
)

// SplitQueue owns the not-yet-applied splits of one instrument. The resolver
// cache and the ledger share a single queue per instrument, so a consumed
// split disappears for every holder at once and can never be applied twice.
type SplitQueue struct {
	events []types.SplitEvent
}

// NewSplitQueue copies the events and sorts them by execution date ascending.
// Upstream order is not guaranteed.
func NewSplitQueue(events []types.SplitEvent) *SplitQueue {
	sorted := append([]types.SplitEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExecutionDate.Before(sorted[j].ExecutionDate)
	})
	return &SplitQueue{events: sorted}
}

func (q *SplitQueue) Len() int {
	return len(q.events)
}

// takeBetween removes and returns every event strictly inside (after, before),
// oldest first. Both bounds are exclusive: a split stamped exactly at a
// trade's time is not part of that trade's catch-up window.
func (q *SplitQueue) takeBetween(after, before time.Time) []types.SplitEvent {
	var taken, kept []types.SplitEvent
	for _, e := range q.events {
		if e.ExecutionDate.After(after) && e.ExecutionDate.Before(before) {
			taken = append(taken, e)
		} else {
			kept = append(kept, e)
		}
	}
	q.events = kept
	return taken
}

// takeFrom removes and returns every event strictly after the watermark,
// oldest first.
func (q *SplitQueue) takeFrom(after time.Time) []types.SplitEvent {
	var taken, kept []types.SplitEvent
	for _, e := range q.events {
		if e.ExecutionDate.After(after) {
			taken = append(taken, e)
		} else {
			kept = append(kept, e)
		}
	}
	q.events = kept
	return taken
}
