// Package status polls battery and wireless-link state and reports changes.
package status

import (
	"context"
	"time"

	"github.com/faizmokh/fuzzyclock/internal/logger"
)

// DefaultPollInterval is how often sysfs is sampled.
const DefaultPollInterval = 5 * time.Second

// Option configures a watcher.
type Option func(*options)

type options struct {
	interval time.Duration
}

// WithPollInterval sets how often the source is sampled.
func WithPollInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// Watcher samples a source and reports values only when they change.
type Watcher[T comparable] struct {
	name     string
	read     func() (T, error)
	log      *logger.Logger
	interval time.Duration

	last  T
	known bool
}

// NewBatteryWatcher watches a battery source.
func NewBatteryWatcher(src SysfsBattery, log *logger.Logger, opts ...Option) *Watcher[Battery] {
	return newWatcher("battery", src.ReadBattery, log, opts...)
}

// NewWirelessWatcher watches a link source.
func NewWirelessWatcher(src SysfsLink, log *logger.Logger, opts ...Option) *Watcher[bool] {
	return newWatcher("wireless", src.ReadLink, log, opts...)
}

// NewWatcher builds a watcher around an arbitrary read function.
func NewWatcher[T comparable](name string, read func() (T, error), log *logger.Logger, opts ...Option) *Watcher[T] {
	return newWatcher(name, read, log, opts...)
}

func newWatcher[T comparable](name string, read func() (T, error), log *logger.Logger, opts ...Option) *Watcher[T] {
	o := options{interval: DefaultPollInterval}
	for _, opt := range opts {
		opt(&o)
	}
	return &Watcher[T]{name: name, read: read, log: log, interval: o.interval}
}

// Peek reads the source once, synchronously, and remembers the value so Run
// only reports later changes.
func (w *Watcher[T]) Peek() (T, error) {
	v, err := w.read()
	if err != nil {
		return v, err
	}
	w.last = v
	w.known = true
	return v, nil
}

// Run polls until ctx is cancelled, sending each changed value to out.
// Read errors are logged and the last value is kept.
func (w *Watcher[T]) Run(ctx context.Context, out chan<- T) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Debug("%s watcher started (interval=%s)", w.name, w.interval)

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("%s watcher stopped", w.name)
			return nil
		case <-ticker.C:
			v, changed, err := w.poll()
			if err != nil {
				w.log.Debug("%s watcher: %v", w.name, err)
				continue
			}
			if !changed {
				continue
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (w *Watcher[T]) poll() (T, bool, error) {
	v, err := w.read()
	if err != nil {
		return v, false, err
	}
	if w.known && v == w.last {
		return v, false, nil
	}
	w.last = v
	w.known = true
	return v, true, nil
}
