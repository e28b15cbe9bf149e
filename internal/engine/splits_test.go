package engine

import (
	"testing"

	"costbase/types"
)

func TestSplitQueueSortsOnConstruction(t *testing.T) {
	queue := NewSplitQueue([]types.SplitEvent{
		splitEvent("AAPL", day(9), "3", "1"),
		splitEvent("AAPL", day(2), "2", "1"),
		splitEvent("AAPL", day(5), "4", "1"),
	})
	taken := queue.takeFrom(day(1))
	if len(taken) != 3 {
		t.Fatalf("takeFrom() returned %d events, want 3", len(taken))
	}
	if !taken[0].ExecutionDate.Equal(day(2)) ||
		!taken[1].ExecutionDate.Equal(day(5)) ||
		!taken[2].ExecutionDate.Equal(day(9)) {
		t.Errorf("events not in ascending date order: %v", taken)
	}
}

func TestSplitQueueTakeBetweenBoundsAreExclusive(t *testing.T) {
	queue := NewSplitQueue([]types.SplitEvent{
		splitEvent("AAPL", day(2), "2", "1"),
		splitEvent("AAPL", day(4), "3", "1"),
		splitEvent("AAPL", day(6), "4", "1"),
	})

	taken := queue.takeBetween(day(2), day(6))
	if len(taken) != 1 {
		t.Fatalf("takeBetween() returned %d events, want 1", len(taken))
	}
	if !taken[0].ExecutionDate.Equal(day(4)) {
		t.Errorf("takeBetween() took event at %s, want day 4", taken[0].ExecutionDate)
	}
	// Events on the bounds stay pending.
	if queue.Len() != 2 {
		t.Errorf("queue length = %d, want 2", queue.Len())
	}
}

func TestSplitQueueTakeRemovesForAllHolders(t *testing.T) {
	queue := NewSplitQueue([]types.SplitEvent{splitEvent("AAPL", day(2), "2", "1")})
	other := queue // same queue shared by resolver cache and ledger

	if taken := queue.takeBetween(day(1), day(3)); len(taken) != 1 {
		t.Fatalf("takeBetween() returned %d events, want 1", len(taken))
	}
	if other.Len() != 0 {
		t.Error("consumed split still visible through second holder")
	}
	if taken := other.takeBetween(day(1), day(3)); len(taken) != 0 {
		t.Error("split taken twice")
	}
}

func TestSplitQueueTakeFromIsStrict(t *testing.T) {
	queue := NewSplitQueue([]types.SplitEvent{
		splitEvent("AAPL", day(3), "2", "1"),
		splitEvent("AAPL", day(5), "3", "1"),
	})
	taken := queue.takeFrom(day(3))
	if len(taken) != 1 || !taken[0].ExecutionDate.Equal(day(5)) {
		t.Fatalf("takeFrom(day3) = %v, want only the day 5 event", taken)
	}
	if queue.Len() != 1 {
		t.Errorf("queue length = %d, want the day 3 event kept", queue.Len())
	}
}
