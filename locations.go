package busfeed

import "github.com/campus-transit/busfeed/nextbus"

// StopsByLocation groups the stops of every route by their 4-decimal
// location key. Stops from different routes sharing a key are the same
// physical stop; the grouping keeps each route's copy so callers can reach
// the per-route tags.
func StopsByLocation(routes []nextbus.Route) map[string][]nextbus.Stop {
	grouped := map[string][]nextbus.Stop{}
	for _, r := range routes {
		for _, s := range r.Stops {
			key := s.LocationKey()
			grouped[key] = append(grouped[key], s)
		}
	}
	return grouped
}

// SameStop reports whether two stops are at the same physical location
// under the 4-decimal (~11 m) tolerance.
func SameStop(a, b nextbus.Stop) bool {
	return a.LocationKey() == b.LocationKey()
}
