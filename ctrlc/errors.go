package ctrlc

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an Error.
type Kind uint8

const (
	// KindNoSuchSignal means the signal does not exist on this platform.
	KindNoSuchSignal Kind = iota + 1
	// KindMultipleHandlers means a handler was already registered.
	KindMultipleHandlers
	// KindSystem means the underlying OS call failed.
	KindSystem
	// KindPoison means a registration was aborted by a panic while the
	// registry lock was held.
	KindPoison
	// KindOther wraps any other failure.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNoSuchSignal:
		return "no-such-signal"
	case KindMultipleHandlers:
		return "multiple-handlers"
	case KindSystem:
		return "system"
	case KindPoison:
		return "poison"
	case KindOther:
		return "other"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

var (
	ErrNoSuchSignal     = errors.New("ctrlc: signal could not be found from the system")
	ErrMultipleHandlers = errors.New("ctrlc: signal handler already registered")
	ErrSystem           = errors.New("ctrlc: unexpected system error")
	ErrPoison           = errors.New("ctrlc: registry lock poisoned")
	ErrOther            = errors.New("ctrlc: external error")
)

var kindSentinels = map[Kind]error{
	KindNoSuchSignal:     ErrNoSuchSignal,
	KindMultipleHandlers: ErrMultipleHandlers,
	KindSystem:           ErrSystem,
	KindPoison:           ErrPoison,
	KindOther:            ErrOther,
}

// Error is returned by every fallible operation in this package.
// Use errors.Is with the Err* sentinels to test the kind.
//
// Err, when set, must be safe to hand to another goroutine; the registry
// never touches an Error from the delivery path.
type Error struct {
	Kind   Kind
	Signal SignalType // set for KindNoSuchSignal and KindMultipleHandlers
	Msg    string     // set for KindPoison
	Err    error      // set for KindSystem and KindOther
}

func (e *Error) describe() string {
	switch e.Kind {
	case KindNoSuchSignal:
		return "signal could not be found from the system: " + e.Signal.String()
	case KindMultipleHandlers:
		return "signal handler already registered: " + e.Signal.String()
	case KindSystem:
		if e.Err != nil {
			return "unexpected system error: " + e.Err.Error()
		}
		return "unexpected system error"
	case KindPoison:
		if e.Msg != "" {
			return e.Msg
		}
		return "registry lock poisoned"
	case KindOther:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "external error"
	}
	return "unknown error"
}

func (e *Error) Error() string { return "ctrlc: " + e.describe() }

// Unwrap exposes the wrapped OS or external error.
func (e *Error) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors.Cause walk into the wrapped error.
func (e *Error) Cause() error { return e.Err }

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

func noSuchSignal(sig SignalType) error {
	return &Error{Kind: KindNoSuchSignal, Signal: sig}
}

func multipleHandlers(sig SignalType) error {
	return &Error{Kind: KindMultipleHandlers, Signal: sig}
}

func systemError(err error, format string, args ...any) error {
	return &Error{Kind: KindSystem, Err: pkgerrors.Wrapf(err, format, args...)}
}

func poisonError(msg string) error {
	return &Error{Kind: KindPoison, Msg: msg}
}

// WrapOther wraps an external error as KindOther. It returns nil for nil
// and leaves an *Error untouched.
func WrapOther(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindOther, Err: err}
}
