package roundtrip

// Stay-rule constants, in seconds.
const (
	// minConnectionSeconds is the shortest acceptable same-trip layover
	// when the search runs in connection mode (MinNights == 0).
	minConnectionSeconds int64 = 2 * 60 * 60

	// secondsPerNight converts a gap into whole nights by truncating
	// division: a 47-hour gap is 1 night, not 1.96.
	secondsPerNight int64 = 24 * 60 * 60
)

// ValidStay reports whether the gap between an arrival and the next
// departure (both epoch seconds) satisfies the stay rule.
//
// Two distinct policies apply, and the asymmetry is deliberate:
//
//   - minNights == 0: the gap is a same-trip connection and must be at
//     least two hours. maxNights is ignored.
//   - minNights > 0: the gap is a stopover measured in whole nights
//     (truncating division by 86400) and must fall in
//     [minNights, maxNights].
func ValidStay(arrival, nextDeparture int64, minNights, maxNights int) bool {
	gap := nextDeparture - arrival
	if minNights == 0 {
		return gap >= minConnectionSeconds
	}
	nights := gap / secondsPerNight

	return nights >= int64(minNights) && nights <= int64(maxNights)
}
