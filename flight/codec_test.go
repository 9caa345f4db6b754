package flight_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyloop/skyloop/flight"
)

const sampleDoc = `{
	"DUB": [
		{"to": "STN", "key": "FR100", "departure": 1000, "arrival": 4600, "weight": 19.99, "currency": "EUR"},
		{"to": "BGY", "key": "FR200", "departure": 2000, "arrival": 9200, "weight": 39.99, "currency": "EUR"}
	],
	"STN": [
		{"to": "DUB", "key": "FR101", "departure": 90000, "arrival": 93600, "weight": 24.50, "currency": "GBP"}
	]
}`

func TestDecodeGraph_FullDocument(t *testing.T) {
	g, err := flight.DecodeGraph(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	out := g.Outgoing("DUB")
	require.Len(t, out, 2)
	assert.Equal(t, flight.Leg{
		Origin:      "DUB",
		Destination: "STN",
		Key:         "FR100",
		Departure:   1000,
		Arrival:     4600,
		Cost:        19.99,
		Currency:    "EUR",
	}, out[0])
	assert.Equal(t, "FR200", out[1].Key)

	stn := g.Outgoing("STN")
	require.Len(t, stn, 1)
	assert.Equal(t, "GBP", stn[0].Currency)
	assert.Equal(t, 3, g.LegCount())
}

func TestDecodeGraph_MissingFieldAbortsWholeLoad(t *testing.T) {
	doc := `{
		"DUB": [
			{"to": "STN", "key": "FR100", "departure": 1000, "arrival": 4600, "weight": 19.99, "currency": "EUR"},
			{"to": "BGY", "key": "FR200", "departure": 2000, "weight": 39.99, "currency": "EUR"}
		]
	}`

	g, err := flight.DecodeGraph(strings.NewReader(doc))
	assert.Nil(t, g, "no partial graph on load error")
	assert.ErrorIs(t, err, flight.ErrMissingField)
	assert.ErrorContains(t, err, `"arrival"`)
	assert.ErrorContains(t, err, `origin "DUB"`)
}

func TestDecodeGraph_MalformedDocument(t *testing.T) {
	g, err := flight.DecodeGraph(strings.NewReader(`["not", "a", "graph"]`))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, flight.ErrDecode)
}

func TestDecodeGraph_AppliesGraphOptions(t *testing.T) {
	g, err := flight.DecodeGraph(strings.NewReader(sampleDoc), flight.WithMaxCost(25))
	require.NoError(t, err)
	assert.Equal(t, 2, g.LegCount(), "FR200 exceeds the cap")
	assert.Len(t, g.Outgoing("DUB"), 1)
}

func TestLoadGraph_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	g, err := flight.LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.LegCount())
}

func TestLoadGraph_MissingFile(t *testing.T) {
	g, err := flight.LoadGraph(filepath.Join(t.TempDir(), "absent.json"))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, flight.ErrDecode)
}
