package ticketid

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Generator mints ticket identifiers of the form Ticket-YYYYMMDD-NNNN.
// The counter is process-lifetime monotonic: it is never reset, not even
// across a date rollover, so identifiers stay unique for the lifetime of
// the process even though the date portion can repeat.
type Generator struct {
	counter atomic.Uint64
	now     func() time.Time
}

// New returns a generator using the wall clock.
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock returns a generator with an injectable clock.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// NextID returns the next identifier. Safe for concurrent callers; the
// increment-and-read is a single atomic operation, so no two calls ever
// observe the same sequence number. The sequence is zero-padded to four
// digits and widens beyond 9999.
func (g *Generator) NextID() string {
	num := g.counter.Add(1)
	return fmt.Sprintf("Ticket-%s-%04d", g.now().Format("20060102"), num)
}
