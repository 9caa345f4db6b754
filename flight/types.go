// This file declares the Leg value type, GraphOption, and the sentinel
// errors shared by the codec.
package flight

import "errors"

// Sentinel errors for graph loading.
var (
	// ErrDecode indicates the graph document could not be read or parsed.
	ErrDecode = errors.New("flight: malformed graph document")

	// ErrMissingField indicates an edge record lacks a required field.
	// The surrounding load fails as a whole; no partial graph is produced.
	ErrMissingField = errors.New("flight: edge record missing required field")
)

// Leg is one timed, priced directed edge between two nodes.
//
// Legs are plain values: copying one is cheap and safe, and the search
// engine relies on that to keep branch state private. Arrival ≥ Departure
// is assumed valid input and is not enforced here.
type Leg struct {
	// Origin is the node the leg departs from.
	Origin string

	// Destination is the node the leg arrives at.
	Destination string

	// Key uniquely identifies the leg. Parallel legs between the same pair
	// of nodes carry distinct keys and are distinct edges.
	Key string

	// Departure is the departure timestamp in epoch seconds.
	Departure int64

	// Arrival is the arrival timestamp in epoch seconds.
	Arrival int64

	// Cost is the fare for this leg.
	Cost float64

	// Currency is the ISO currency code of Cost.
	Currency string
}

// GraphOption configures Graph construction.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time settings.
type graphConfig struct {
	maxCost float64 // price cap, meaningful only when capped
	capped  bool    // whether maxCost applies
}

// WithMaxCost returns a GraphOption that drops every leg whose Cost exceeds
// limit before the graph is built. Pruning at construction keeps the graph
// immutable afterwards while still supporting price-capped searches.
func WithMaxCost(limit float64) GraphOption {
	return func(c *graphConfig) {
		c.maxCost = limit
		c.capped = true
	}
}
