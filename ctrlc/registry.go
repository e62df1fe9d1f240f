// Package ctrlc counts OS signal deliveries per signal and guards handler
// installation so each signal has at most one handler at a time across
// the whole process. Deliveries
// only ever increment a counter; ordinary code reads the counters with
// GetCounter and decides what to do.
package ctrlc

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const defaultBufferSize = 16

type registration struct {
	id     uuid.UUID
	native os.Signal
	table  *Table
	ch     chan os.Signal
	quit   chan struct{}
	done   chan struct{}
}

// slots is the registration state of one signal source. Every Registry
// on the OS source shares osSlots, so at most one handler per signal is
// installed process-wide however many registries exist.
type slots struct {
	mu     sync.Mutex
	active [numSignalTypes]*registration
	poison string // non-empty once a panic escaped the critical section
}

var osSlots = &slots{}

// locked runs fn under the slots lock. A panic inside fn poisons the
// slots and is returned as an ErrPoison error.
func (s *slots) locked(op string, log *zap.Logger, fn func() error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.poison != "" {
		return poisonError(s.poison)
	}
	defer func() {
		if rec := recover(); rec != nil {
			s.poison = fmt.Sprintf("%s panicked while holding the registry lock: %v", op, rec)
			log.Error("ctrlc: registry poisoned", zap.String("op", op), zap.Any("panic", rec))
			err = poisonError(s.poison)
		}
	}()
	return fn()
}

// Registry installs and resets handlers. Check-and-install runs as one
// critical section over the slots it shares with every other Registry on
// the same source.
type Registry struct {
	mu sync.Mutex // guards the settings below

	logger           *zap.Logger
	ignoredAsHandled bool
	bufferSize       int

	// fixed after NewRegistry
	source SignalSource
	table  *Table
	slots  *slots
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		source:           defaultSignalSource{},
		table:            signalTable,
		slots:            osSlots,
		logger:           zap.NewNop(),
		ignoredAsHandled: true,
		bufferSize:       defaultBufferSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var Default = NewRegistry()

// Table returns the counter table deliveries are recorded in.
func (r *Registry) Table() *Table { return r.table }

// SetLogger replaces the logger. A nil logger disables logging. Safe for
// concurrent use; each call snapshots the logger once.
func (r *Registry) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.mu.Lock()
	r.logger = l
	r.mu.Unlock()
}

type settings struct {
	logger           *zap.Logger
	ignoredAsHandled bool
	bufferSize       int
}

func (r *Registry) settings() settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return settings{
		logger:           r.logger,
		ignoredAsHandled: r.ignoredAsHandled,
		bufferSize:       r.bufferSize,
	}
}

// SetHandler installs the delivery counter for sig. It fails with
// ErrNoSuchSignal if the platform lacks sig, ErrMultipleHandlers if a
// handler is already installed (by any registry on the same source, or
// as an ignored disposition when WithIgnoredAsHandled is on), and
// ErrSystem if the source rejects the registration. A failed call leaves
// any earlier registration active.
func (r *Registry) SetHandler(sig SignalType) error {
	return r.setHandler(sig, nil)
}

// setHandler is SetHandler with an optional per-call ignored-as-handled override.
func (r *Registry) setHandler(sig SignalType, ignoredAsHandled *bool) error {
	native, ok := toNative(sig)
	if !ok {
		return noSuchSignal(sig)
	}
	cfg := r.settings()
	if ignoredAsHandled != nil {
		cfg.ignoredAsHandled = *ignoredAsHandled
	}
	return r.slots.locked("SetHandler", cfg.logger, func() error {
		if prev := r.slots.active[sig]; prev != nil {
			cfg.logger.Warn("ctrlc: handler already registered",
				zap.Stringer("signal", sig), zap.Stringer("registration", prev.id))
			return multipleHandlers(sig)
		}
		if cfg.ignoredAsHandled && r.source.Ignored(native) {
			cfg.logger.Warn("ctrlc: signal is ignored, refusing to override", zap.Stringer("signal", sig))
			return multipleHandlers(sig)
		}

		reg := &registration{
			id:     uuid.New(),
			native: native,
			table:  r.table,
			ch:     make(chan os.Signal, cfg.bufferSize),
			quit:   make(chan struct{}),
			done:   make(chan struct{}),
		}
		if err := r.source.Notify(reg.ch, native); err != nil {
			return systemError(err, "notify %s", nativeName(native))
		}
		go reg.relay()
		r.slots.active[sig] = reg

		cfg.logger.Info("ctrlc: handler installed",
			zap.Stringer("signal", sig),
			zap.String("native", nativeName(native)),
			zap.Stringer("registration", reg.id))
		return nil
	})
}

// SetHandlers installs every sig, continuing past failures. The
// returned error combines all failures.
func (r *Registry) SetHandlers(sigs ...SignalType) error {
	var err error
	for _, sig := range sigs {
		err = multierr.Append(err, r.SetHandler(sig))
	}
	return err
}

// ResetHandler restores the default disposition of sig, whichever
// registry installed the current handler. Deliveries already queued are
// counted before it returns; the counter itself is left alone. Failures
// are logged, never returned.
func (r *Registry) ResetHandler(sig SignalType) {
	log := r.settings().logger
	native, ok := toNative(sig)
	if !ok {
		log.Debug("ctrlc: reset of unsupported signal ignored", zap.Stringer("signal", sig))
		return
	}
	err := r.slots.locked("ResetHandler", log, func() error {
		reg := r.slots.active[sig]
		if reg != nil {
			r.source.Stop(reg.ch)
		}
		r.source.Reset(native)
		if reg == nil {
			return nil
		}
		close(reg.quit)
		<-reg.done
		r.slots.active[sig] = nil
		log.Info("ctrlc: handler reset",
			zap.Stringer("signal", sig),
			zap.String("native", nativeName(reg.native)),
			zap.Stringer("registration", reg.id))
		return nil
	})
	if err != nil {
		log.Warn("ctrlc: reset failed", zap.Stringer("signal", sig), zap.Error(err))
	}
}

// IsRegistered reports whether a handler is installed for sig by any
// registry on the same source.
func (r *Registry) IsRegistered(sig SignalType) bool {
	if !sig.valid() {
		return false
	}
	r.slots.mu.Lock()
	defer r.slots.mu.Unlock()
	return r.slots.active[sig] != nil
}

// ClearPoison makes poisoned registration state usable again. Poison is
// shared like the registrations: clearing it through one Registry clears
// it for every Registry on the same source. Registrations made before the
// panic are kept as they were.
func (r *Registry) ClearPoison() {
	log := r.settings().logger
	r.slots.mu.Lock()
	defer r.slots.mu.Unlock()
	if r.slots.poison != "" {
		log.Info("ctrlc: poison cleared", zap.String("was", r.slots.poison))
	}
	r.slots.poison = ""
}

// relay moves deliveries from the runtime into the table. It only
// converts, looks up and increments.
func (reg *registration) relay() {
	defer close(reg.done)
	for {
		select {
		case s := <-reg.ch:
			reg.table.deliver(s)
		case <-reg.quit:
			for {
				select {
				case s := <-reg.ch:
					reg.table.deliver(s)
				default:
					return
				}
			}
		}
	}
}
