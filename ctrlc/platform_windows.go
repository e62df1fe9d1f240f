//go:build windows

package ctrlc

import (
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// The runtime reports CTRL_C and CTRL_BREAK as SIGINT and the close,
// logoff and shutdown events as SIGTERM. Nothing else is deliverable.
var nativeSignals = map[SignalType]syscall.Signal{
	Interrupt: syscall.SIGINT,
	Terminate: syscall.SIGTERM,
}

func toNative(sig SignalType) (os.Signal, bool) {
	n, ok := nativeSignals[sig]
	if !ok {
		return nil, false
	}
	return n, true
}

func fromNative(s os.Signal) (SignalType, bool) {
	num, ok := s.(syscall.Signal)
	if !ok {
		return 0, false
	}
	switch num {
	case syscall.SIGINT:
		return Interrupt, true
	case syscall.SIGTERM:
		return Terminate, true
	}
	return 0, false
}

func nativeName(s os.Signal) string { return s.String() }

// raise only supports Interrupt. The CTRL_BREAK_EVENT goes to process
// group 0, meaning every process attached to this console receives it,
// including a parent sharing the console. A process without a console
// gets ErrSystem.
func raise(sig SignalType) error {
	if sig != Interrupt {
		return noSuchSignal(sig)
	}
	if err := windows.GenerateConsoleCtrlEvent(windows.CTRL_BREAK_EVENT, 0); err != nil {
		return systemError(err, "GenerateConsoleCtrlEvent(CTRL_BREAK_EVENT, 0)")
	}
	return nil
}
