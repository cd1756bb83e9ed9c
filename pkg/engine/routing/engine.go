package routing

import (
	"sort"

	"github.com/gamecss/routefinder/pkg"
	"github.com/gamecss/routefinder/pkg/costfunction"
	da "github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/geo"
	"github.com/gamecss/routefinder/pkg/spatialindex"
	"github.com/gamecss/routefinder/pkg/util"
	"go.uber.org/zap"
)

// RouteCalculator answers shortest-route queries over one compiled graph and
// catalog. Both are read-only here; any number of calculators may share them.
type RouteCalculator struct {
	log   *zap.Logger
	graph *da.Graph
	info  *da.InfoCatalog
	index *spatialindex.Rtree
}

func NewRouteCalculator(graph *da.Graph, info *da.InfoCatalog, log *zap.Logger) (*RouteCalculator, error) {
	if graph == nil || info == nil || info.Airports == nil || info.Waypoints == nil {
		return nil, util.WrapErrorf(nil, util.ErrDataCorruption, "compiled route data is incomplete")
	}
	index := spatialindex.NewRtree()
	index.Build(info, log)
	return &RouteCalculator{
		log:   log,
		graph: graph,
		info:  info,
		index: index,
	}, nil
}

// AirportInfo returns the airport record for an ICAO code.
func (rc *RouteCalculator) AirportInfo(icao string) (da.Airport, error) {
	airport, ok := rc.info.Airports[icao]
	if !ok {
		return da.Airport{}, util.WrapErrorf(nil, util.ErrNotFound, "cannot find airport %s", icao)
	}
	return airport, nil
}

// FindWaypointsByName returns every catalog waypoint carrying the display
// name, keyed by geohash code. Several fixes may share one name.
func (rc *RouteCalculator) FindWaypointsByName(name string) (map[string]da.Waypoint, error) {
	result := make(map[string]da.Waypoint)
	for hashed, waypoint := range rc.info.Waypoints {
		if waypoint.Name == name {
			result[hashed] = waypoint
		}
	}
	if len(result) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "cannot find node %s", name)
	}
	return result, nil
}

// NearbyWaypoints returns every catalog waypoint within radius nautical
// miles of an airport, closest first. The airport's own catalog entry is
// included at distance zero.
func (rc *RouteCalculator) NearbyWaypoints(icao string, radius float64) ([]da.Waypoint, error) {
	airport, ok := rc.info.Airports[icao]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "cannot find airport %s", icao)
	}

	entries := rc.index.SearchWithinRadius(airport.Position.Lat, airport.Position.Lon, radius)
	waypoints := make([]da.Waypoint, 0, len(entries))
	for _, entry := range entries {
		waypoints = append(waypoints, entry.GetWaypoint())
	}
	sort.Slice(waypoints, func(i, j int) bool {
		return geo.CalculateGreatCircleDistance(airport.Position, waypoints[i].Position) <
			geo.CalculateGreatCircleDistance(airport.Position, waypoints[j].Position)
	})
	return waypoints, nil
}

// Calculate finds the shortest route between two airports with no forced
// procedure fixes.
func (rc *RouteCalculator) Calculate(orig, dest string) (*da.RouteResult, error) {
	return rc.CalculateWithConstraints(orig, dest, nil, nil)
}

// CalculateWithConstraints additionally pins the SID exit fix and/or the STAR
// entry fix of the route.
func (rc *RouteCalculator) CalculateWithConstraints(orig, dest string,
	sidExit, starEntry *da.NodeId) (*da.RouteResult, error) {
	origAirport, origKnown := rc.info.Airports[orig]
	destAirport, destKnown := rc.info.Airports[dest]
	if !origKnown || !destKnown {
		return nil, util.WrapErrorf(nil, util.ErrNoResult, "airport not found")
	}

	origNode := da.NewAirportNode(orig)
	destNode := da.NewAirportNode(dest)
	costFunction, err := costfunction.NewConstrainedCostFunction(origNode, destNode, sidExit, starEntry)
	if err != nil {
		return nil, err
	}

	search := NewDijkstra(rc.graph, costFunction)
	nodes, edges, totalDist, found := search.ShortestPath(origNode, destNode)
	if !found {
		return nil, util.WrapErrorf(nil, util.ErrNoResult, "unable to find a path from %s to %s", orig, dest)
	}
	rc.log.Debug("route found",
		zap.String("orig", orig), zap.String("dest", dest),
		zap.Float64("distance", totalDist), zap.Int("settled", search.numSettledNodes))

	displayRoute, routeNodes, err := rc.formatRoute(orig, dest, origAirport, destAirport, nodes, edges)
	if err != nil {
		return nil, err
	}

	return &da.RouteResult{
		DisplayRoute: displayRoute,
		Distance:     totalDist,
		Nodes:        routeNodes,
		Sid:          origAirport.Sid,
		Star:         destAirport.Star,
	}, nil
}

// formatRoute turns the raw path into the display sequence and the resolved
// node list. Consecutive hops along one label collapse into a single span:
// a fix name is emitted only where the label used to reach the next fix
// changes, followed by the new label.
func (rc *RouteCalculator) formatRoute(orig, dest string, origAirport, destAirport da.Airport,
	nodes []da.NodeId, edges []da.Edge) ([]string, []da.Waypoint, error) {

	displayRoute := make([]string, 0, len(nodes))
	routeNodes := make([]da.Waypoint, 0, len(nodes))
	prevLabel := ""

	for i, node := range nodes {
		label := ""
		if i < len(edges) {
			label = edges[i].Label
		}

		name := node.Code
		position := geo.Coordinate{}
		frequency := 0.0
		marker := false

		switch node.Kind {
		case pkg.AIRPORT_NODE:
			switch node.Code {
			case orig:
				position = origAirport.Position
			case dest:
				position = destAirport.Position
			default:
				return nil, nil, util.WrapErrorf(nil, util.ErrInternalConsistency,
					"unexpected airport node %s on path", node.Code)
			}
		case pkg.WAYPOINT_NODE:
			waypoint, ok := rc.info.Waypoints[node.Code]
			if !ok {
				return nil, nil, util.WrapErrorf(nil, util.ErrInternalConsistency,
					"waypoint %s on path is missing from the catalog", node.Code)
			}
			decoded, err := geo.DecodeGeohash(node.Code)
			if err != nil {
				return nil, nil, util.WrapErrorf(err, util.ErrInternalConsistency,
					"waypoint node %s on path is not a geohash", node.Code)
			}
			name = waypoint.Name
			position = decoded
			frequency = waypoint.Frequency
		case pkg.PROCEDURE_MARKER:
			// synthetic; carries no position and never joins the node
			// list, but still drives label-change detection
			marker = true
			if node.Code != pkg.SID_LABEL && node.Code != pkg.STAR_LABEL {
				return nil, nil, util.WrapErrorf(nil, util.ErrInternalConsistency,
					"unexpected marker node %s on path", node.Code)
			}
		default:
			return nil, nil, util.WrapErrorf(nil, util.ErrInternalConsistency,
				"unexpected node %s on path", node.Code)
		}

		if i >= len(edges) || label != prevLabel {
			displayRoute = append(displayRoute, name)
			if label != "" {
				displayRoute = append(displayRoute, label)
				prevLabel = label
			}
		}
		if !marker {
			routeNodes = append(routeNodes, da.NewWaypoint(name, position, frequency))
		}
	}

	return displayRoute, routeNodes, nil
}
