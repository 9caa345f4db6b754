package roundtrip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyloop/skyloop/roundtrip"
)

const (
	hour  int64 = 3600
	night int64 = 86400
)

func TestValidStay_ConnectionMode(t *testing.T) {
	// minNights == 0: a same-trip layover needs at least two hours.
	assert.False(t, roundtrip.ValidStay(0, hour, 0, 0), "1 hour is too short")
	assert.False(t, roundtrip.ValidStay(0, 2*hour-1, 0, 0), "7199s is still short of 2 hours")
	assert.True(t, roundtrip.ValidStay(0, 2*hour, 0, 0), "exactly 2 hours qualifies")
	assert.True(t, roundtrip.ValidStay(0, 10*night, 0, 0), "maxNights is ignored in connection mode")
}

func TestValidStay_StopoverMode(t *testing.T) {
	// minNights > 0: whole nights, floor division.
	assert.True(t, roundtrip.ValidStay(0, night, 1, 3))
	assert.True(t, roundtrip.ValidStay(0, 3*night, 1, 3))
	assert.False(t, roundtrip.ValidStay(0, night-1, 1, 3), "just under one night floors to 0")
	assert.False(t, roundtrip.ValidStay(0, 4*night, 1, 3), "above maxNights")
}

func TestValidStay_TruncationSemantics(t *testing.T) {
	// A 47-hour gap is 1 night, not 1.96.
	gap := 47 * hour
	assert.True(t, roundtrip.ValidStay(0, gap, 1, 1))
	assert.False(t, roundtrip.ValidStay(0, gap, 2, 3))
}

func TestValidStay_NonPositiveGap(t *testing.T) {
	assert.False(t, roundtrip.ValidStay(1000, 1000, 0, 0))
	assert.False(t, roundtrip.ValidStay(1000, 500, 0, 0))
	assert.False(t, roundtrip.ValidStay(1000, 500, 1, 3))
}

func TestValidStay_OffsetArrival(t *testing.T) {
	// The rule depends on the gap, not absolute timestamps.
	base := int64(1_700_000_000)
	assert.True(t, roundtrip.ValidStay(base, base+2*hour, 0, 0))
	assert.True(t, roundtrip.ValidStay(base, base+2*night, 2, 2))
}
