package memory

import (
	"sync"
	"testing"
	"time"

	"concertPlanner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := models.ParseDate(s)
	require.NoError(t, err)

	return d
}

func event(t *testing.T, day, venue, artist string) models.Event {
	t.Helper()

	return models.Event{Date: date(t, day), VenueName: venue, ArtistName: artist}
}

func venues(events []models.Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = models.FormatDate(e.Date) + " " + e.VenueName
	}

	return names
}

func TestListSortedOrdering(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(event(t, "2024-05-01", "Z-Venue", "a"))
	l.Add(event(t, "2024-03-10", "B-Venue", "b"))
	l.Add(event(t, "2024-03-10", "A-Venue", "c"))

	assert.Equal(t, []string{
		"2024-03-10 A-Venue",
		"2024-03-10 B-Venue",
		"2024-05-01 Z-Venue",
	}, venues(l.ListSorted()))
}

func TestListSortedIsRepeatable(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(event(t, "2024-05-01", "Z-Venue", "a"))
	l.Add(event(t, "2024-03-10", "A-Venue", "b"))
	l.Add(event(t, "2024-03-10", "A-Venue", "c"))

	first := l.ListSorted()
	second := l.ListSorted()

	assert.Equal(t, first, second)
	// same date and venue keep insertion order
	assert.Equal(t, "b", first[0].ArtistName)
	assert.Equal(t, "c", first[1].ArtistName)
}

func TestListSortedDoesNotMutate(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(event(t, "2024-05-01", "Z-Venue", "first"))
	l.Add(event(t, "2024-03-10", "A-Venue", "second"))

	listed := l.ListSorted()
	listed[0].ArtistName = "changed"

	// storage order is still insertion order
	removed, ok := l.RemoveByDate(date(t, "2024-05-01"))
	require.True(t, ok)
	assert.Equal(t, "first", removed.ArtistName)

	rest := l.ListSorted()
	require.Len(t, rest, 1)
	assert.Equal(t, "second", rest[0].ArtistName)
}

func TestListSortedEmpty(t *testing.T) {
	t.Parallel()

	l := NewLedger()

	events := l.ListSorted()
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestRemoveByDateEmpty(t *testing.T) {
	t.Parallel()

	l := NewLedger()

	_, ok := l.RemoveByDate(date(t, "2024-01-01"))
	assert.False(t, ok)
	assert.Zero(t, l.Len())
}

func TestRemoveByDateNoMatch(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(event(t, "2024-05-01", "Z-Venue", "a"))

	_, ok := l.RemoveByDate(date(t, "2024-05-02"))
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
}

func TestRemoveByDateDuplicates(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	l.Add(event(t, "2024-03-10", "Z-Venue", "inserted first"))
	l.Add(event(t, "2024-03-10", "A-Venue", "inserted second"))
	l.Add(event(t, "2024-04-01", "A-Venue", "other day"))

	removed, ok := l.RemoveByDate(date(t, "2024-03-10"))
	require.True(t, ok)
	assert.Equal(t, "inserted first", removed.ArtistName)
	assert.Equal(t, "Z-Venue", removed.VenueName)

	rest := l.ListSorted()
	require.Len(t, rest, 2)
	assert.Equal(t, "inserted second", rest[0].ArtistName)
	assert.Equal(t, "other day", rest[1].ArtistName)

	removed, ok = l.RemoveByDate(date(t, "2024-03-10"))
	require.True(t, ok)
	assert.Equal(t, "inserted second", removed.ArtistName)

	_, ok = l.RemoveByDate(date(t, "2024-03-10"))
	assert.False(t, ok)
	assert.Equal(t, 1, l.Len())
}

func TestLedgerConcurrentUse(t *testing.T) {
	t.Parallel()

	l := NewLedger()
	d := date(t, "2024-06-01")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Add(models.Event{Date: d, VenueName: "V"})
		}()
		go func() {
			defer wg.Done()
			_ = l.ListSorted()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, l.Len())

	removed := 0
	for {
		if _, ok := l.RemoveByDate(d); !ok {
			break
		}
		removed++
	}
	assert.Equal(t, 50, removed)
}
