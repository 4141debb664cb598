package nextbus

import "strconv"

// Default colors substituted when a route's color attributes are absent or
// not six hex digits.
const (
	DefaultRouteColor         = "000000"
	DefaultRouteOppositeColor = "ffffff"
)

// Route is one transit route with its stops, directions and polyline paths.
// Records are rebuilt fresh on every fetch; a Route with an empty Tag is
// still emitted (the feed occasionally ships them) and callers must tolerate
// the empty identifier.
type Route struct {
	Tag           string
	Title         string
	Color         string
	OppositeColor string

	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64

	Stops      []Stop
	Directions []Direction
	Paths      []Path
}

// Stop is one stop within a route's stop list. StopID is the user-facing
// identifier (also used for QR-code lookup) and is distinct from Tag.
type Stop struct {
	Tag        string
	Title      string
	ShortTitle string
	Lat        float64
	Lon        float64
	StopID     string
}

// LocationKey returns the stop's position rounded to 4 decimal places as a
// "lat,lon" string. Stops from different routes sharing a key (~11 m) are
// treated as the same physical stop.
func (s Stop) LocationKey() string {
	return formatCoord(s.Lat) + "," + formatCoord(s.Lon)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Direction is an ordered traversal of a subset of a route's stops.
type Direction struct {
	Tag      string
	Title    string
	Name     string
	UseForUI bool
	Stops    []string // stop tags in traversal order
}

// PathPoint is a single vertex of a route polyline.
type PathPoint struct {
	Lat float64
	Lon float64
}

// Path is one contiguous polyline segment; a route may have several
// disjoint paths.
type Path []PathPoint

// VehicleLocation is a live snapshot of one vehicle. Snapshots are
// superseded wholesale on every poll.
type VehicleLocation struct {
	ID              string
	RouteTag        string
	DirTag          string
	Lat             float64
	Lon             float64
	Heading         int // degrees
	SpeedKmHr       float64
	SecsSinceReport int
	Predictable     bool
}

// Prediction is a single upcoming-arrival estimate for one vehicle at one
// stop.
type Prediction struct {
	EpochTime         int64
	Seconds           int
	Minutes           int
	IsDeparture       bool
	AffectedByLayover bool
	Vehicle           string
	Block             string
}

// PredictionDirection groups a stop's predictions by travel direction.
// Decoding guarantees Predictions is non-empty.
type PredictionDirection struct {
	Title       string
	Predictions []Prediction
}

// StopPredictions holds the predictions for one stop+route pair. Decoding
// guarantees Directions is non-empty.
type StopPredictions struct {
	StopTag    string
	StopTitle  string
	RouteTag   string
	RouteTitle string
	Directions []PredictionDirection
}
