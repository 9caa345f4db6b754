package sink

import (
	"github.com/skyloop/skyloop/flight"
	"github.com/skyloop/skyloop/roundtrip"
)

// Collector accumulates every accepted itinerary in memory, in delivery
// order. The zero value is ready to use.
type Collector struct {
	itineraries [][]flight.Leg
}

// Accept stores the itinerary. It never fails.
func (c *Collector) Accept(itinerary []flight.Leg) error {
	c.itineraries = append(c.itineraries, itinerary)

	return nil
}

// Count reports how many itineraries were accepted.
func (c *Collector) Count() int {
	return len(c.itineraries)
}

// Itineraries returns the accepted itineraries in delivery order.
// The returned slice is the collector's own storage.
func (c *Collector) Itineraries() [][]flight.Leg {
	return c.itineraries
}

// Routes renders each accepted itinerary as its route string, in order.
func (c *Collector) Routes() []string {
	out := make([]string, len(c.itineraries))
	for i, it := range c.itineraries {
		out[i] = roundtrip.Route(it)
	}

	return out
}
