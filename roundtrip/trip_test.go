package roundtrip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyloop/skyloop/flight"
	"github.com/skyloop/skyloop/roundtrip"
)

func TestRoute(t *testing.T) {
	assert.Equal(t, "", roundtrip.Route(nil))
	assert.Equal(t, "A-B-A", roundtrip.Route([]flight.Leg{
		mkLeg("A", "B", "AB", 0, 3600),
		mkLeg("B", "A", "BA", 10800, 14400),
	}))
}

func TestSummarize_Empty(t *testing.T) {
	assert.Zero(t, roundtrip.Summarize(nil))
}

func TestSummarize_Triangle(t *testing.T) {
	it := []flight.Leg{
		{Origin: "A", Destination: "B", Key: "AB", Departure: 0, Arrival: 3600, Cost: 19.99, Currency: "EUR"},
		{Origin: "B", Destination: "C", Key: "BC", Departure: 133200, Arrival: 136800, Cost: 24.01, Currency: "EUR"},
		{Origin: "C", Destination: "A", Key: "CA", Departure: 309600, Arrival: 313200, Cost: 31.00, Currency: "EUR"},
	}

	trip := roundtrip.Summarize(it)
	assert.Equal(t, "A-B-C-A", trip.Route)
	assert.Equal(t, "EUR", trip.Currency)
	assert.InDelta(t, 75.00, trip.TotalCost, 1e-9)
	assert.Equal(t, time.Duration(313200)*time.Second, trip.Duration)

	require.Len(t, trip.Stays, 2)
	assert.Equal(t, "B", trip.Stays[0].Location)
	assert.Equal(t, time.Duration(129600)*time.Second, trip.Stays[0].Duration)
	assert.Equal(t, "C", trip.Stays[1].Location)
	assert.Equal(t, time.Duration(172800)*time.Second, trip.Stays[1].Duration)
}
