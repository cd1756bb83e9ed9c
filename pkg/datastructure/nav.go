package datastructure

import (
	"github.com/gamecss/routefinder/pkg"
	"github.com/gamecss/routefinder/pkg/geo"
)

// NodeId identifies a graph vertex. The kind is assigned when the vertex
// enters the graph; code is an ICAO code for airports, a geohash code for
// waypoints and the literal "SID"/"STAR" for procedure markers.
type NodeId struct {
	Kind pkg.NodeKind
	Code string
}

func NewAirportNode(icao string) NodeId {
	return NodeId{Kind: pkg.AIRPORT_NODE, Code: icao}
}

func NewWaypointNode(geohashCode string) NodeId {
	return NodeId{Kind: pkg.WAYPOINT_NODE, Code: geohashCode}
}

func NewProcedureMarker(label string) NodeId {
	return NodeId{Kind: pkg.PROCEDURE_MARKER, Code: label}
}

// Edge is a directed connection between two nodes. Label is an airway
// identifier, "SID" or "STAR". Distance in nautical miles.
type Edge struct {
	Distance float64
	Label    string
}

func NewEdge(distance float64, label string) Edge {
	return Edge{Distance: distance, Label: label}
}

// Waypoint is a named fix. Frequency is the broadcast frequency when the fix
// coincides with a radio navaid, 0 otherwise.
type Waypoint struct {
	Name      string
	Position  geo.Coordinate
	Frequency float64
}

func NewWaypoint(name string, position geo.Coordinate, frequency float64) Waypoint {
	return Waypoint{Name: name, Position: position, Frequency: frequency}
}

func (w Waypoint) IsNavaid() bool {
	return w.Frequency != 0
}

// Procedure is one published SID or STAR: a runway-specific ordered sequence
// of fixes.
type Procedure struct {
	Name   string
	Runway string
	Nodes  []Waypoint
}

// Airport groups the published procedures of one field. Sid is keyed by exit
// fix name, Star by entry fix name; several runway/transition variants may
// collapse under the same fix.
type Airport struct {
	ICAO     string
	Position geo.Coordinate
	Sid      map[string][]Procedure
	Star     map[string][]Procedure
}

// InfoCatalog holds the metadata the graph itself does not carry. Waypoints
// is keyed by geohash code, Airports by ICAO code. Built once by the
// compiler, read-only afterward.
type InfoCatalog struct {
	Airports  map[string]Airport
	Waypoints map[string]Waypoint
}

func NewInfoCatalog() *InfoCatalog {
	return &InfoCatalog{
		Airports:  make(map[string]Airport),
		Waypoints: make(map[string]Waypoint),
	}
}

// RouteResult is the outcome of one route query. DisplayRoute alternates fix
// names and the label spans connecting them, collapsed so that consecutive
// hops along the same airway merge. Nodes lists every traversed fix with its
// resolved position, excluding synthetic procedure markers.
type RouteResult struct {
	DisplayRoute []string
	Distance     float64
	Nodes        []Waypoint
	Sid          map[string][]Procedure
	Star         map[string][]Procedure
}
