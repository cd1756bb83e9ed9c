package pkg

// enum of graph node kind. resolved once at graph construction, never
// re-inferred from the shape of the code string downstream.
type NodeKind uint8

const (
	AIRPORT_NODE NodeKind = iota
	WAYPOINT_NODE
	PROCEDURE_MARKER
)

const (
	INF_WEIGHT float64 = 1e15

	// mean earth radius in nautical miles
	EARTH_RADIUS_NM = 3440.065

	GEOHASH_PRECISION = 9
	ICAO_LENGTH       = 4

	SID_LABEL  = "SID"
	STAR_LABEL = "STAR"
)

const (
	DEBUG = false
)
