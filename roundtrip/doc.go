// Package roundtrip implements the constrained backtracking search that
// enumerates every valid round-trip itinerary through a flight.Graph,
// streaming each one to a Sink as soon as it is found.
//
// Rationale (succinct):
//  1. Each branch of the search owns value copies of its partial path and
//     visited set, so backtracking needs no rollback and parallel branches
//     never share mutable search state. The only shared resources are the
//     stop token, the delivery lock, and the result counter.
//  2. A closing move emits the current path plus a return leg whenever the
//     return departs after the last arrival and satisfies the stay rule;
//     emission does not terminate the branch.
//  3. An extension move recurses into an unvisited, non-origin destination
//     while the depth bound allows one more leg plus the eventual return.
//  4. Cancellation is cooperative: the stop token is polled at branch entry
//     and before each candidate leg. Work already dispatched may still emit,
//     but no new branch starts once the flag is observed.
//  5. Delivery is serialized: no two Sink.Accept calls are ever in flight at
//     once, even under WithParallelism, because the sink is not assumed to
//     be safe for concurrent invocation. A failed delivery is logged and
//     dropped; the search continues.
//
// Complexity:
//
//   - Worst case exponential in MaxFlights (exhaustive enumeration).
//   - Per branch: O(branching factor) candidate scans plus O(depth) copies.
//   - Memory: O(depth) per live branch; the graph itself is shared read-only.
//
// Options:
//
//   - WithMinNights(n) / WithMaxNights(n)  stay rule bounds (see ValidStay).
//   - WithMaxFlights(n)                    depth bound; below 2 no itinerary exists.
//   - WithStopToken(t)                     share one stop token across searches.
//   - WithParallelism(n)                   fan first-leg branches across n workers.
//   - WithLogger(l)                        slog destination for progress and drops.
//   - WithProgressEvery(n)                 progress log cadence, 0 disables.
//
// Errors:
//
//   - ErrNilGraph, ErrEmptyOrigin  — rejected by New.
//   - ErrNilSink                   — rejected by Run.
package roundtrip
