package flight

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// edgeRecord mirrors one edge object of the on-disk graph format.
// Pointer fields distinguish "absent" from zero values so that a missing
// required field fails the load instead of silently becoming 0 or "".
type edgeRecord struct {
	To        *string  `json:"to"`
	Key       *string  `json:"key"`
	Departure *int64   `json:"departure"`
	Arrival   *int64   `json:"arrival"`
	Weight    *float64 `json:"weight"`
	Currency  *string  `json:"currency"`
}

// missingField reports the name of the first absent required field, or "".
func (e *edgeRecord) missingField() string {
	switch {
	case e.To == nil:
		return "to"
	case e.Key == nil:
		return "key"
	case e.Departure == nil:
		return "departure"
	case e.Arrival == nil:
		return "arrival"
	case e.Weight == nil:
		return "weight"
	case e.Currency == nil:
		return "currency"
	}

	return ""
}

// DecodeGraph reads a JSON graph document from r and builds a Graph.
//
// The document maps each origin node ID to an ordered array of edge records
// with fields to, key, departure, arrival, weight, and currency. Any edge
// missing a required field aborts the whole decode with ErrMissingField;
// unreadable or malformed input aborts with ErrDecode. No partial graph is
// ever returned.
func DecodeGraph(r io.Reader, opts ...GraphOption) (*Graph, error) {
	// 1. Parse the full document.
	var doc map[string][]edgeRecord
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	// 2. Validate and flatten in sorted-origin order, so the resulting
	//    leg collection is deterministic regardless of map iteration.
	origins := make([]string, 0, len(doc))
	for origin := range doc {
		origins = append(origins, origin)
	}
	sort.Strings(origins)

	var legs []Leg
	for _, origin := range origins {
		for i, rec := range doc[origin] {
			if name := rec.missingField(); name != "" {
				return nil, fmt.Errorf("%w: %q in edge %d of origin %q", ErrMissingField, name, i, origin)
			}
			legs = append(legs, Leg{
				Origin:      origin,
				Destination: *rec.To,
				Key:         *rec.Key,
				Departure:   *rec.Departure,
				Arrival:     *rec.Arrival,
				Cost:        *rec.Weight,
				Currency:    *rec.Currency,
			})
		}
	}

	// 3. Group into the adjacency structure.
	return NewGraph(legs, opts...), nil
}

// LoadGraph opens path and decodes it with DecodeGraph.
func LoadGraph(path string, opts ...GraphOption) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrDecode, path, err)
	}
	defer f.Close()

	return DecodeGraph(f, opts...)
}
