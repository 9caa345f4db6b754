package sink

import (
	"encoding/json"
	"io"

	"github.com/skyloop/skyloop/flight"
)

// legRecord echoes the input edge format on the way out, plus the origin
// the edge was keyed under, so emitted lines can feed another load.
type legRecord struct {
	Origin    string  `json:"origin"`
	To        string  `json:"to"`
	Key       string  `json:"key"`
	Departure int64   `json:"departure"`
	Arrival   int64   `json:"arrival"`
	Weight    float64 `json:"weight"`
	Currency  string  `json:"currency"`
}

// legRecords converts an itinerary into its wire form.
func legRecords(itinerary []flight.Leg) []legRecord {
	out := make([]legRecord, len(itinerary))
	for i, leg := range itinerary {
		out[i] = legRecord{
			Origin:    leg.Origin,
			To:        leg.Destination,
			Key:       leg.Key,
			Departure: leg.Departure,
			Arrival:   leg.Arrival,
			Weight:    leg.Cost,
			Currency:  leg.Currency,
		}
	}

	return out
}

// JSONL streams each accepted itinerary as one JSON array line (JSON Lines)
// to the underlying writer.
type JSONL struct {
	enc *json.Encoder
}

// NewJSONL returns a JSONL sink writing to w.
func NewJSONL(w io.Writer) *JSONL {
	return &JSONL{enc: json.NewEncoder(w)}
}

// Accept writes the itinerary as a single line. An encoding or write error
// surfaces to the search, which drops this one result and continues.
func (s *JSONL) Accept(itinerary []flight.Leg) error {
	return s.enc.Encode(legRecords(itinerary))
}
