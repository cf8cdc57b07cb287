package ticketid

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^Ticket-\d{8}-\d{4,}$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNextIDFormat(t *testing.T) {
	gen := NewWithClock(fixedClock(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)))

	id := gen.NextID()
	assert.Equal(t, "Ticket-20260314-0001", id)
	assert.Regexp(t, idPattern, id)
}

func TestNextIDStrictlyIncreasing(t *testing.T) {
	gen := New()

	prev := 0
	for i := 0; i < 50; i++ {
		id := gen.NextID()
		require.Regexp(t, idPattern, id)
		seq, err := strconv.Atoi(id[strings.LastIndex(id, "-")+1:])
		require.NoError(t, err)
		assert.Greater(t, seq, prev)
		prev = seq
	}
}

func TestNextIDWidensPastFourDigits(t *testing.T) {
	gen := NewWithClock(fixedClock(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
	gen.counter.Store(9999)

	assert.Equal(t, "Ticket-20260102-10000", gen.NextID())
}

func TestNextIDSurvivesDateRollover(t *testing.T) {
	day := time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC)
	gen := NewWithClock(func() time.Time { return day })

	assert.Equal(t, "Ticket-20260531-0001", gen.NextID())

	// Counter keeps climbing across midnight; only the date changes.
	day = day.Add(time.Second)
	assert.Equal(t, "Ticket-20260601-0002", gen.NextID())
}

func TestNextIDConcurrentCallersNeverCollide(t *testing.T) {
	gen := New()

	const n = 500
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- gen.NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}
