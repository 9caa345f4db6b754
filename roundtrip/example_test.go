package roundtrip_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/skyloop/skyloop/flight"
	"github.com/skyloop/skyloop/roundtrip"
)

// ExampleSearch_Run enumerates the round trips of a small triangle graph.
// Graph structure (legs carry departure/arrival epoch seconds):
//
//	A ──► B ──► C
//	▲           │
//	└───────────┘
//
// plus a direct return B → A, so both A-B-A and A-B-C-A close.
func ExampleSearch_Run() {
	g := flight.NewGraph([]flight.Leg{
		{Origin: "A", Destination: "B", Key: "AB", Departure: 0, Arrival: 3600, Cost: 20, Currency: "EUR"},
		{Origin: "B", Destination: "A", Key: "BA", Departure: 14400, Arrival: 18000, Cost: 25, Currency: "EUR"},
		{Origin: "B", Destination: "C", Key: "BC", Departure: 10800, Arrival: 14400, Cost: 15, Currency: "EUR"},
		{Origin: "C", Destination: "A", Key: "CA", Departure: 25200, Arrival: 28800, Cost: 30, Currency: "EUR"},
	})

	// Connection mode: every gap just needs to span at least two hours.
	search, err := roundtrip.New(g, "A",
		roundtrip.WithMaxFlights(3),
		roundtrip.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Results stream into the sink the moment each branch closes.
	total, err := search.Run(roundtrip.SinkFunc(func(it []flight.Leg) error {
		trip := roundtrip.Summarize(it)
		fmt.Printf("%s %.2f %s\n", trip.Route, trip.TotalCost, trip.Currency)

		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total:", total)

	// Output:
	// A-B-A 45.00 EUR
	// A-B-C-A 65.00 EUR
	// total: 2
}
