package ctrlc

import "go.uber.org/zap"

// SetHandler installs sig on the Default registry.
func SetHandler(sig SignalType) error { return Default.SetHandler(sig) }

// SetHandlers installs every sig on the Default registry.
func SetHandlers(sigs ...SignalType) error { return Default.SetHandlers(sigs...) }

// ResetHandler restores the default disposition of sig on the Default registry.
func ResetHandler(sig SignalType) { Default.ResetHandler(sig) }

// IsRegistered reports whether the Default registry has sig installed.
func IsRegistered(sig SignalType) bool { return Default.IsRegistered(sig) }

// Raise delivers sig to the current process through the OS.
func Raise(sig SignalType) error { return raise(sig) }

// SetLogger sets the logger for the Default registry.
func SetLogger(l *zap.Logger) { Default.SetLogger(l) }
