// Package roundtrip types and options: the Sink contract, functional
// Options for Search, and sentinel errors.
package roundtrip

import (
	"errors"
	"log/slog"

	"github.com/skyloop/skyloop/flight"
)

// DefaultProgressEvery is the delivery cadence at which the search logs a
// progress line when no explicit cadence is configured.
const DefaultProgressEvery uint64 = 1000

var (
	// ErrNilGraph is returned by New when the graph is nil.
	ErrNilGraph = errors.New("roundtrip: graph is nil")

	// ErrEmptyOrigin is returned by New when the origin node ID is empty.
	ErrEmptyOrigin = errors.New("roundtrip: origin is empty")

	// ErrNilSink is returned by Run when no sink is provided.
	ErrNilSink = errors.New("roundtrip: sink is nil")
)

// Sink receives each completed itinerary. The search guarantees calls are
// serialized — at most one Accept is in flight at any moment — so
// implementations need no internal locking against the search itself.
// Returning a non-nil error drops that one itinerary; it is never retried
// and never aborts the search.
type Sink interface {
	Accept(itinerary []flight.Leg) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(itinerary []flight.Leg) error

// Accept implements Sink by calling f.
func (f SinkFunc) Accept(itinerary []flight.Leg) error { return f(itinerary) }

// Option configures a Search. Use with New(g, origin, opts...).
type Option func(*Options)

// Options holds the configurable parameters of a Search.
type Options struct {
	// MinNights is the minimum stay at each stopover, in whole nights.
	// Zero switches the stay rule into connection mode (≥ 2 hour gaps).
	MinNights int

	// MaxNights is the maximum stay at each stopover, in whole nights.
	// Ignored while MinNights is zero.
	MaxNights int

	// MaxFlights bounds itinerary length. Below 2 no round trip can both
	// leave and return, so every run yields zero results.
	MaxFlights int

	// Stop is the shared cancellation token. A fresh token is created when
	// none is supplied; supply one to pre-arm cancellation or to stop
	// several searches together.
	Stop *StopToken

	// Parallelism is the number of workers exploring first-leg branches.
	// 1 (the default) keeps the walk single-threaded and the emission order
	// fully deterministic; higher values leave emission order unspecified
	// while delivery stays serialized.
	Parallelism int

	// Logger receives progress lines and delivery-failure reports.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// ProgressEvery is the number of successful deliveries between progress
	// log lines. 0 disables progress logging.
	ProgressEvery uint64
}

// DefaultOptions returns the Options used when no Option overrides them:
// connection mode (MinNights = 0), MaxFlights = 2, sequential walk,
// default logger, progress every DefaultProgressEvery deliveries.
func DefaultOptions() Options {
	return Options{
		MinNights:     0,
		MaxNights:     0,
		MaxFlights:    2,
		Stop:          nil,
		Parallelism:   1,
		Logger:        nil,
		ProgressEvery: DefaultProgressEvery,
	}
}

// WithMinNights returns an Option that sets the minimum stopover nights.
// Zero selects connection mode: gaps are validated in hours, not nights.
func WithMinNights(n int) Option {
	return func(o *Options) { o.MinNights = n }
}

// WithMaxNights returns an Option that sets the maximum stopover nights.
func WithMaxNights(n int) Option {
	return func(o *Options) { o.MaxNights = n }
}

// WithMaxFlights returns an Option that bounds the number of legs per
// itinerary.
func WithMaxFlights(n int) Option {
	return func(o *Options) { o.MaxFlights = n }
}

// WithStopToken returns an Option that installs t as the cancellation token.
// A nil t has no effect.
func WithStopToken(t *StopToken) Option {
	return func(o *Options) {
		if t != nil {
			o.Stop = t
		}
	}
}

// WithParallelism returns an Option that fans first-leg branches across n
// workers. Values below 1 are treated as 1.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithLogger returns an Option that directs progress and delivery-failure
// logging to l. A nil l has no effect (slog.Default() is retained).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery returns an Option that sets the progress-log cadence in
// successful deliveries. 0 disables progress logging.
func WithProgressEvery(n uint64) Option {
	return func(o *Options) { o.ProgressEvery = n }
}
