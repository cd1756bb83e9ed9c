package datastructure

import (
	"path/filepath"
	"testing"

	"github.com/gamecss/routefinder/pkg/geo"
	"github.com/stretchr/testify/require"
)

func TestGraphRoundTrip(t *testing.T) {
	g := NewGraph()
	g.AddEdge(NewAirportNode("ZSFZ"), NewWaypointNode("wsk52p21e"), NewEdge(52.3, "SID"))
	g.AddEdge(NewWaypointNode("wsk52p21e"), NewWaypointNode("wtq9etjds"), NewEdge(139.5, "B221"))
	g.AddEdge(NewWaypointNode("wtq9etjds"), NewAirportNode("ZSPD"), NewEdge(38.2, "STAR"))

	filename := filepath.Join(t.TempDir(), "graph.bin")
	require.NoError(t, g.WriteGraph(filename))

	got, err := ReadGraph(filename)
	require.NoError(t, err)
	require.Equal(t, g, got)
}

func TestInfoCatalogRoundTrip(t *testing.T) {
	info := NewInfoCatalog()
	info.Waypoints["wtq9etjds"] = NewWaypoint("BK", geo.NewCoordinate(30.6, 121.42), 323.0)
	info.Airports["ZSPD"] = Airport{
		ICAO:     "ZSPD",
		Position: geo.NewCoordinate(31.143378, 121.805214),
		Sid:      map[string][]Procedure{},
		Star: map[string][]Procedure{
			"BK": {{Name: "BK41", Runway: "35L", Nodes: []Waypoint{
				NewWaypoint("BK", geo.NewCoordinate(30.6, 121.42), 323.0),
			}}},
		},
	}

	filename := filepath.Join(t.TempDir(), "info.bin")
	require.NoError(t, info.WriteInfoCatalog(filename))

	got, err := ReadInfoCatalog(filename)
	require.NoError(t, err)
	require.Equal(t, info, got)
}

func TestReadGraphCorrupted(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "missing.bin")
	_, err := ReadGraph(filename)
	require.Error(t, err)
}
