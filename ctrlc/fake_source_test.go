package ctrlc

import (
	"os"
	"sync"
)

// fakeSource stands in for os/signal. deliver plays the role of the OS.
type fakeSource struct {
	mu        sync.Mutex
	chans     map[os.Signal][]chan<- os.Signal
	ignored   map[os.Signal]bool
	resets    []os.Signal
	notifyErr error
	panicMsg  string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		chans:   make(map[os.Signal][]chan<- os.Signal),
		ignored: make(map[os.Signal]bool),
	}
}

func (f *fakeSource) Notify(c chan<- os.Signal, sig os.Signal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.chans[sig] = append(f.chans[sig], c)
	return nil
}

func (f *fakeSource) Stop(c chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for sig, list := range f.chans {
		kept := list[:0]
		for _, ch := range list {
			if ch != c {
				kept = append(kept, ch)
			}
		}
		f.chans[sig] = kept
	}
}

func (f *fakeSource) Reset(sig os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, sig)
	delete(f.ignored, sig)
}

func (f *fakeSource) Ignored(sig os.Signal) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ignored[sig]
}

func (f *fakeSource) setIgnored(sig os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ignored[sig] = true
}

func (f *fakeSource) setPanic(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.panicMsg = msg
}

func (f *fakeSource) resetCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.resets)
}

// deliver sends sig to every channel currently subscribed and reports
// how many accepted it. Like the runtime, it never blocks: a full
// channel drops the delivery.
func (f *fakeSource) deliver(sig os.Signal) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.chans[sig] {
		select {
		case c <- sig:
			n++
		default:
		}
	}
	return n
}

func mustNative(sig SignalType) os.Signal {
	n, ok := toNative(sig)
	if !ok {
		panic("signal not supported on this platform: " + sig.String())
	}
	return n
}
