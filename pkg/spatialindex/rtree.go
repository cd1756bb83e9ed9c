package spatialindex

import (
	"math"

	da "github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[WaypointEntry]
}

// WaypointEntry is one indexed fix: its geohash code plus the catalog record.
type WaypointEntry struct {
	hashed   string
	waypoint da.Waypoint
}

func (we WaypointEntry) GetHashedPosition() string {
	return we.hashed
}

func (we WaypointEntry) GetWaypoint() da.Waypoint {
	return we.waypoint
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[WaypointEntry]
	return &Rtree{
		tr: &tr,
	}
}

// Build indexes every waypoint of the catalog by position.
func (rt *Rtree) Build(info *da.InfoCatalog, log *zap.Logger) {
	log.Info("building r-tree spatial index", zap.Int("waypoints", len(info.Waypoints)))
	for hashed, waypoint := range info.Waypoints {
		point := [2]float64{waypoint.Position.Lon, waypoint.Position.Lat}
		rt.tr.Insert(point, point, WaypointEntry{hashed: hashed, waypoint: waypoint})
	}
}

// SearchWithinRadius returns all indexed waypoints within radius nautical
// miles of the query point.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []WaypointEntry {
	// one minute of latitude is one nautical mile
	latDelta := radius / 60.0
	lonDelta := radius / (60.0 * math.Cos(qLat*math.Pi/180.0))

	query := geo.NewCoordinate(qLat, qLon)
	results := make([]WaypointEntry, 0, 10)
	rt.tr.Search(
		[2]float64{qLon - lonDelta, qLat - latDelta},
		[2]float64{qLon + lonDelta, qLat + latDelta},
		func(min, max [2]float64, entry WaypointEntry) bool {
			if geo.CalculateGreatCircleDistance(query, entry.waypoint.Position) <= radius {
				results = append(results, entry)
			}
			return true
		})
	return results
}
