package ctrlc

import (
	"strconv"
	"strings"
)

// SignalType identifies a signal independently of the platform it is
// delivered on. Not every value is available everywhere; SetHandler
// reports ErrNoSuchSignal for the ones the running OS lacks.
type SignalType uint8

const (
	Interrupt SignalType = iota
	Terminate
	Hangup
	Quit
	User1
	User2
	WindowChange

	numSignalTypes
)

var signalNames = [numSignalTypes]string{
	Interrupt:    "interrupt",
	Terminate:    "terminate",
	Hangup:       "hangup",
	Quit:         "quit",
	User1:        "user1",
	User2:        "user2",
	WindowChange: "window-change",
}

func (s SignalType) String() string {
	if s < numSignalTypes {
		return signalNames[s]
	}
	return "signal(" + strconv.Itoa(int(s)) + ")"
}

func (s SignalType) valid() bool { return s < numSignalTypes }

// ParseSignalType maps a name such as "interrupt" or "SIGINT" to its
// SignalType. Matching is case-insensitive.
func ParseSignalType(name string) (SignalType, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "sig")
	switch n {
	case "int":
		return Interrupt, true
	case "term":
		return Terminate, true
	case "hup":
		return Hangup, true
	case "usr1":
		return User1, true
	case "usr2":
		return User2, true
	case "winch":
		return WindowChange, true
	}
	for i, v := range signalNames {
		if v == n {
			return SignalType(i), true
		}
	}
	return 0, false
}

// All returns every SignalType in the catalog, supported on this
// platform or not.
func All() []SignalType {
	out := make([]SignalType, 0, numSignalTypes)
	for s := SignalType(0); s < numSignalTypes; s++ {
		out = append(out, s)
	}
	return out
}
