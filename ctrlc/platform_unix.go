//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package ctrlc

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

var nativeSignals = [numSignalTypes]syscall.Signal{
	Interrupt:    unix.SIGINT,
	Terminate:    unix.SIGTERM,
	Hangup:       unix.SIGHUP,
	Quit:         unix.SIGQUIT,
	User1:        unix.SIGUSR1,
	User2:        unix.SIGUSR2,
	WindowChange: unix.SIGWINCH,
}

func toNative(sig SignalType) (os.Signal, bool) {
	if !sig.valid() {
		return nil, false
	}
	return nativeSignals[sig], true
}

func fromNative(s os.Signal) (SignalType, bool) {
	num, ok := s.(syscall.Signal)
	if !ok {
		return 0, false
	}
	for i, n := range nativeSignals {
		if n == num {
			return SignalType(i), true
		}
	}
	return 0, false
}

func nativeName(s os.Signal) string {
	if num, ok := s.(syscall.Signal); ok {
		if name := unix.SignalName(num); name != "" {
			return name
		}
	}
	return s.String()
}

func raise(sig SignalType) error {
	native, ok := toNative(sig)
	if !ok {
		return noSuchSignal(sig)
	}
	pid := unix.Getpid()
	if err := unix.Kill(pid, native.(syscall.Signal)); err != nil {
		return systemError(err, "kill(%d, %s)", pid, nativeName(native))
	}
	return nil
}
