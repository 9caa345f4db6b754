package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/skyloop/skyloop/flight"
	"github.com/skyloop/skyloop/roundtrip"
)

// DefaultBatchSize is the number of itineraries buffered between flushes
// when Neo4jConfig leaves BatchSize at zero.
const DefaultBatchSize = 1000

// ErrClosed is returned by Accept after the sink has been closed.
var ErrClosed = errors.New("sink: neo4j sink is closed")

// persistQuery stores one batch: each itinerary becomes an Itinerary node,
// each leg a merged Flight node linked with its position in the sequence.
const persistQuery = `
UNWIND $rows AS row
CREATE (t:Itinerary {route: row.route, totalCost: row.totalCost, numFlights: row.numFlights})
WITH t, row
UNWIND row.legs AS leg
MERGE (f:Flight {key: leg.key})
  ON CREATE SET f.origin = leg.origin, f.destination = leg.to,
                f.departure = leg.departure, f.arrival = leg.arrival,
                f.cost = leg.weight, f.currency = leg.currency
CREATE (t)-[:INCLUDES {position: leg.position}]->(f)`

// Neo4jConfig carries the connection settings for a Neo4j sink.
type Neo4jConfig struct {
	// URI is the bolt/neo4j connection URI, e.g. "neo4j://localhost:7687".
	URI string

	// Username and Password authenticate against the instance.
	Username string
	Password string

	// Database is the target database name, e.g. "neo4j".
	Database string

	// BatchSize is the number of itineraries buffered before a flush.
	// Zero selects DefaultBatchSize.
	BatchSize int
}

// Neo4j buffers accepted itineraries and flushes them to Neo4j in batches,
// one parameterized query per batch. Close flushes the tail batch and
// releases the driver.
type Neo4j struct {
	driver    neo4j.DriverWithContext
	ctx       context.Context
	database  string
	batchSize int

	rows   []map[string]any
	closed bool
}

// NewNeo4j connects to the configured instance, verifies connectivity, and
// returns a ready sink. ctx bounds the connection check and every later
// flush issued through Accept.
func NewNeo4j(ctx context.Context, cfg Neo4jConfig) (*Neo4j, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("sink: create neo4j driver: %w", err)
	}
	if err = driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)

		return nil, fmt.Errorf("sink: verify neo4j connectivity: %w", err)
	}

	batch := cfg.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	return &Neo4j{
		driver:    driver,
		ctx:       ctx,
		database:  cfg.Database,
		batchSize: batch,
		rows:      make([]map[string]any, 0, batch),
	}, nil
}

// Accept buffers the itinerary and flushes once the batch is full. A flush
// error surfaces to the search, which logs it and keeps running; the failed
// batch is lost, never retried.
func (s *Neo4j) Accept(itinerary []flight.Leg) error {
	if s.closed {
		return ErrClosed
	}

	s.rows = append(s.rows, rowParams(itinerary))
	if len(s.rows) < s.batchSize {
		return nil
	}

	return s.Flush()
}

// Flush writes every buffered itinerary in one query. The buffer empties
// either way: a batch that failed to persist is lost, not retried.
func (s *Neo4j) Flush() error {
	if len(s.rows) == 0 {
		return nil
	}
	n := len(s.rows)

	_, err := neo4j.ExecuteQuery(
		s.ctx,
		s.driver,
		persistQuery,
		map[string]any{"rows": s.rows},
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database),
	)
	s.rows = s.rows[:0]
	if err != nil {
		return fmt.Errorf("sink: lost batch of %d itineraries: %w", n, err)
	}

	return nil
}

// Close flushes the tail batch and closes the driver. The sink rejects any
// Accept after Close.
func (s *Neo4j) Close(ctx context.Context) error {
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.Flush()
	closeErr := s.driver.Close(ctx)
	if flushErr != nil {
		return flushErr
	}

	return closeErr
}

// rowParams builds the query parameters for one itinerary.
func rowParams(itinerary []flight.Leg) map[string]any {
	trip := roundtrip.Summarize(itinerary)

	legs := make([]map[string]any, len(itinerary))
	for i, leg := range itinerary {
		legs[i] = map[string]any{
			"position":  i,
			"origin":    leg.Origin,
			"to":        leg.Destination,
			"key":       leg.Key,
			"departure": leg.Departure,
			"arrival":   leg.Arrival,
			"weight":    leg.Cost,
			"currency":  leg.Currency,
		}
	}

	return map[string]any{
		"route":      trip.Route,
		"totalCost":  trip.TotalCost,
		"numFlights": len(itinerary),
		"legs":       legs,
	}
}
