package ctrlc

import (
	"os"
	"os/signal"
)

// SignalSource abstracts the OS-level registration calls so tests can
// inject a fake and deliver signals deterministically.
type SignalSource interface {
	// Notify starts relaying sig to c.
	Notify(c chan<- os.Signal, sig os.Signal) error
	// Stop stops relaying to c.
	Stop(c chan<- os.Signal)
	// Reset restores the default disposition of sig.
	Reset(sig os.Signal)
	// Ignored reports whether sig is currently ignored.
	Ignored(sig os.Signal) bool
}

// defaultSignalSource is the production implementation of SignalSource.
// It delegates to os/signal; the runtime's handler is installed with
// SA_RESTART on POSIX so interrupted system calls are restarted.
type defaultSignalSource struct{}

func (defaultSignalSource) Notify(c chan<- os.Signal, sig os.Signal) error {
	signal.Notify(c, sig)
	return nil
}

func (defaultSignalSource) Stop(c chan<- os.Signal) { signal.Stop(c) }

func (defaultSignalSource) Reset(sig os.Signal) { signal.Reset(sig) }

func (defaultSignalSource) Ignored(sig os.Signal) bool { return signal.Ignored(sig) }
