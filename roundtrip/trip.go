package roundtrip

import (
	"strings"
	"time"

	"github.com/skyloop/skyloop/flight"
)

// Stay records the time spent at one intermediate stop of an itinerary.
type Stay struct {
	// Location is the node the traveller waits at.
	Location string

	// Duration is the gap between arriving there and departing onward.
	Duration time.Duration
}

// Trip is a human-oriented summary of one emitted itinerary: the route
// string, the stay at every intermediate stop, the summed cost, and the
// door-to-door duration.
type Trip struct {
	// Legs is the itinerary itself, in travel order.
	Legs []flight.Leg

	// Route joins the visited nodes, e.g. "DUB-STN-BGY-DUB".
	Route string

	// Stays lists the gap spent at each intermediate destination.
	Stays []Stay

	// TotalCost sums the leg costs. Legs priced in different currencies
	// are summed as-is; Currency reports the first leg's code.
	TotalCost float64

	// Currency is the currency code of the first leg.
	Currency string

	// Duration spans first departure to last arrival.
	Duration time.Duration
}

// Route renders the node sequence of an itinerary as "A-B-C-A".
// An empty itinerary renders as "".
func Route(itinerary []flight.Leg) string {
	if len(itinerary) == 0 {
		return ""
	}

	var b strings.Builder
	for _, leg := range itinerary {
		b.WriteString(leg.Origin)
		b.WriteByte('-')
	}
	b.WriteString(itinerary[len(itinerary)-1].Destination)

	return b.String()
}

// Summarize derives a Trip from an emitted itinerary.
// The zero Trip is returned for an empty itinerary.
func Summarize(itinerary []flight.Leg) Trip {
	if len(itinerary) == 0 {
		return Trip{}
	}

	t := Trip{
		Legs:     itinerary,
		Route:    Route(itinerary),
		Currency: itinerary[0].Currency,
		Duration: time.Duration(itinerary[len(itinerary)-1].Arrival-itinerary[0].Departure) * time.Second,
	}

	var i int
	for i = 0; i < len(itinerary); i++ {
		t.TotalCost += itinerary[i].Cost
		if i+1 < len(itinerary) {
			t.Stays = append(t.Stays, Stay{
				Location: itinerary[i].Destination,
				Duration: time.Duration(itinerary[i+1].Departure-itinerary[i].Arrival) * time.Second,
			})
		}
	}

	return t
}
