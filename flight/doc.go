// Package flight defines the Leg value type and the immutable FlightGraph:
// a mapping from origin node ID to the ordered collection of outgoing legs,
// built once before any search begins and never mutated afterwards.
//
// Key features:
//   - NewGraph(legs, opts...): groups legs by origin, preserving input order
//     within each origin so enumeration stays deterministic
//   - Outgoing(node): ordered outgoing legs, nil for unknown nodes
//   - WithMaxCost(limit): drop legs above a price cap at construction time
//   - DecodeGraph / LoadGraph: strict JSON codec for the on-disk graph format
//
// Because a Graph is read-only after construction, it may be shared across
// any number of concurrent searches without locking.
//
// Complexity:
//
//   - Construction: O(L) for L input legs.
//   - Outgoing:     O(1) lookup.
//   - Memory:       O(L) — legs are stored once, by value.
//
// Errors:
//
//   - ErrDecode       — unreadable or structurally malformed graph document.
//   - ErrMissingField — an edge record lacks a required field; the whole load
//     fails and no partial graph is returned.
package flight
