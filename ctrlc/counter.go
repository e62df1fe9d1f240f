package ctrlc

import (
	"os"

	"go.uber.org/atomic"
)

// Counter counts deliveries of one signal. The delivery path only ever
// increments it; Load, Take and Reset are for ordinary program code.
type Counter struct {
	n atomic.Uint64
}

// Load returns the number of deliveries observed since the last Take or Reset.
func (c *Counter) Load() uint64 { return c.n.Load() }

// Take returns the current count and clears it in one step.
func (c *Counter) Take() uint64 { return c.n.Swap(0) }

// Reset clears the count.
func (c *Counter) Reset() { c.n.Store(0) }

func (c *Counter) inc() { c.n.Inc() }

// Table holds one Counter per SignalType. Its shape is fixed at
// construction so lookups never allocate, lock or mutate structure.
type Table struct {
	counters [numSignalTypes]Counter
}

// NewTable returns a table with a zeroed counter for every SignalType.
func NewTable() *Table { return &Table{} }

// Get returns the counter for sig, or false if sig is not tracked.
func (t *Table) Get(sig SignalType) (*Counter, bool) {
	if !sig.valid() {
		return nil, false
	}
	return &t.counters[sig], true
}

// deliver is what runs for every signal the runtime forwards: map the
// native value back, find the counter, bump it. Unknown natives are dropped.
func (t *Table) deliver(native os.Signal) {
	sig, ok := fromNative(native)
	if !ok {
		return
	}
	if c, ok := t.Get(sig); ok {
		c.inc()
	}
}

// signalTable is the process-wide table. It exists before any handler
// can be installed and is never replaced.
var signalTable = NewTable()

// GetCounter returns the process-wide counter for sig.
func GetCounter(sig SignalType) (*Counter, bool) { return signalTable.Get(sig) }
