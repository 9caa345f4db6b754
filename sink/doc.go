// Package sink provides ready-made roundtrip.Sink implementations:
//
//   - Collector — in-memory accumulation, handy for tests and small runs
//   - JSONL     — one JSON array per itinerary, streamed to an io.Writer
//   - Neo4j     — batched persistence of legs and itineraries into Neo4j
//
// The search engine serializes Accept calls, so none of these sinks lock
// against the search; a sink shared between *independent* searches running
// concurrently is the caller's problem to coordinate.
package sink
