// Package skyloop enumerates valid round-trip flight itineraries through a
// directed graph of timed, priced legs — streaming each itinerary to a
// consumer the moment it is found instead of materializing the full result set.
//
// 🚀 What is skyloop?
//
//	A small, focused toolkit that brings together:
//		• flight/    — the immutable FlightGraph: origin → ordered outgoing legs, plus the JSON codec
//		• roundtrip/ — the constrained backtracking search, stay/layover rules,
//		  cooperative cancellation and serialized result delivery
//		• sink/      — ready-made result sinks: in-memory collector, JSON Lines, Neo4j
//		• cmd/skyloop — a CLI to run searches against graph files and serve results
//
// ✨ Why skyloop?
//
//   - Streaming by design — results reach your sink as soon as a branch closes
//   - Branch-local state — path and visited-set are value-copied per branch,
//     so parallel exploration never locks search state
//   - Cooperative cancellation — an atomic stop token polled at every branch
//     and candidate leg, pre-armable and timer-friendly
//   - Deterministic — fixed graph input plus a sequential walk reproduces the
//     exact same emission order, run after run
//
// Quick ASCII example:
//
//	    DUB ──► STN ──► BGY
//	     ▲               │
//	     └───────────────┘
//
//	one valid round trip of three legs, back where it started.
//
// Start with roundtrip.New and flight.LoadGraph; see the package examples.
//
//	go get github.com/skyloop/skyloop
package skyloop
