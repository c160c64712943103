package memory

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"concertPlanner/internal/models"
)

// Ledger holds the planned events of one session in insertion order.
type Ledger struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends e. Duplicates are allowed.
func (l *Ledger) Add(e models.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, e)
}

// ListSorted returns a copy of all events ordered by date, then venue name.
func (l *Ledger) ListSorted() []models.Event {
	l.mu.RLock()
	sorted := slices.Clone(l.events)
	l.mu.RUnlock()

	slices.SortStableFunc(sorted, func(a, b models.Event) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.VenueName, b.VenueName)
	})

	if sorted == nil {
		return []models.Event{}
	}

	return sorted
}

// RemoveByDate removes the first event, in insertion order, held on date.
// When several events share the date only that first one goes.
func (l *Ledger) RemoveByDate(date time.Time) (models.Event, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.events, func(e models.Event) bool {
		return e.Date.Equal(date)
	})
	if i < 0 {
		return models.Event{}, false
	}

	removed := l.events[i]
	l.events = slices.Delete(l.events, i, i+1)

	return removed, true
}

func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.events)
}
