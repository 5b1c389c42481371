// Package timestamp issues unique, time-ordered identifiers based on the wall
// clock in milliseconds.
package timestamp

import (
	"runtime"
	"sync"
	"time"

	"github.com/rescale/rescale-util/internal/util/check"
)

// Clock returns the current time in milliseconds since the Unix epoch.
type Clock func() int64

// SystemClock reads time.Now.
func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// Generator hands out strictly increasing millisecond timestamps. It is safe
// for concurrent use.
type Generator struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

// New returns a Generator reading the system clock.
func New() *Generator {
	return NewWithClock(SystemClock)
}

// NewWithClock returns a Generator reading clock. It panics with a
// check.Violation if clock is nil.
func NewWithClock(clock Clock) *Generator {
	check.NotNil(clock)
	return &Generator{clock: clock, last: -1}
}

// Next returns the current time in milliseconds, waiting for the clock to
// tick if the previous call already returned the current millisecond. Values
// never repeat and never decrease: if the wall clock was set back, Next
// continues from the last issued value instead.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	for now == g.last {
		runtime.Gosched()
		now = g.clock()
	}
	if now < g.last {
		now = g.last + 1
	}
	g.last = now
	return now
}

// Last returns the most recently issued value, or -1 if none was issued yet.
func (g *Generator) Last() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

var defaultGenerator = sync.OnceValue(New)

// Default returns the process-wide Generator. Code that can take a Generator
// as a dependency should do so instead.
func Default() *Generator {
	return defaultGenerator()
}
