package ctrlc

import "go.uber.org/zap"

type Option func(*Registry)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l == nil {
			l = zap.NewNop()
		}
		r.logger = l
	}
}

// WithSource replaces the OS signal source. A registry on its own source
// also gets its own registration state, separate from the process-wide
// state every OS-backed registry shares.
func WithSource(src SignalSource) Option {
	return func(r *Registry) {
		r.source = src
		r.slots = &slots{}
	}
}

// WithIgnoredAsHandled controls whether a signal whose disposition is
// "ignore" counts as already handled. Enabled by default.
func WithIgnoredAsHandled(enabled bool) Option {
	return func(r *Registry) { r.ignoredAsHandled = enabled }
}

// WithBufferSize sets how many deliveries may queue between the runtime
// and the counter before the runtime starts dropping them.
func WithBufferSize(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}

// WithTable points the registry at a table other than the process-wide one.
func WithTable(t *Table) Option {
	return func(r *Registry) {
		if t != nil {
			r.table = t
		}
	}
}
