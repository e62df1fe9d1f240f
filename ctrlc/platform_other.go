//go:build !windows && !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package ctrlc

import "os"

// Platforms without a POSIX signal table only get the portable
// interrupt.

func toNative(sig SignalType) (os.Signal, bool) {
	if sig != Interrupt {
		return nil, false
	}
	return os.Interrupt, true
}

func fromNative(s os.Signal) (SignalType, bool) {
	if s == os.Interrupt {
		return Interrupt, true
	}
	return 0, false
}

func nativeName(s os.Signal) string { return s.String() }

func raise(sig SignalType) error {
	native, ok := toNative(sig)
	if !ok {
		return noSuchSignal(sig)
	}
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return systemError(err, "find process %d", os.Getpid())
	}
	if err := p.Signal(native); err != nil {
		return systemError(err, "signal %s", nativeName(native))
	}
	return nil
}
