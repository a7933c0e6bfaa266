package deniverse

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/deniverse/deniverse/date"
)

func TestEventThrottleCoalesces(t *testing.T) {
	throttle := newEventThrottle(20 * time.Millisecond)
	defer throttle.Stop()

	var mu sync.Mutex
	got := map[string]int{}
	send := func(ev Event) {
		mu.Lock()
		got[ev.Document]++
		mu.Unlock()
	}

	// A burst of writes to the same document yields a single event.
	for i := 0; i < 5; i++ {
		throttle.Enqueue(Event{Document: AgendaFile}, send)
	}
	throttle.Enqueue(Event{Document: FinanceFile}, send)

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if got[AgendaFile] != 1 {
		t.Errorf("agenda events = %d, want 1", got[AgendaFile])
	}
	if got[FinanceFile] != 1 {
		t.Errorf("finance events = %d, want 1", got[FinanceFile])
	}
}

func TestWatchEmitsOnDocumentChange(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := Watch(ctx, dir)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}

	s := NewAgendaStore(dir)
	s.SetWeekNote(date.MustParse("2026-03-14"), "sprint 12")

	select {
	case ev := <-events:
		if ev.Document != WeekNotesFile {
			t.Errorf("event for %q, want %q", ev.Document, WeekNotesFile)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after a document write")
	}

	cancel()
	// The channel closes once the context is done.
	select {
	case _, ok := <-events:
		if ok {
			return // a buffered event is fine, closure follows
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
