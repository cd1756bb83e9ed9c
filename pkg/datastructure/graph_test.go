package datastructure

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdgeAndNeighbors(t *testing.T) {
	g := NewGraph()
	a := NewAirportNode("ZSFZ")
	b := NewWaypointNode("wsk52p21e")
	c := NewWaypointNode("wtq9etjds")

	g.AddEdge(a, b, NewEdge(52.3, "SID"))
	g.AddEdge(b, c, NewEdge(139.5, "B221"))

	require.True(t, g.HasNode(a))
	require.True(t, g.HasNode(b))
	require.False(t, g.HasNode(c)) // no outgoing edges
	require.Equal(t, 2, g.NumberOfVertices())
	require.Equal(t, 2, g.NumberOfEdges())

	visited := make(map[NodeId]Edge)
	g.ForOutEdgesOf(a, func(to NodeId, edge Edge) {
		visited[to] = edge
	})
	require.Len(t, visited, 1)
	require.Equal(t, NewEdge(52.3, "SID"), visited[b])
}

func TestAddEdgeOverwrites(t *testing.T) {
	g := NewGraph()
	a := NewWaypointNode("wsk52p21e")
	b := NewWaypointNode("wtq9etjds")

	g.AddEdge(a, b, NewEdge(100, "V74"))
	g.AddEdge(a, b, NewEdge(101, "B221"))

	edge, ok := g.GetEdge(a, b)
	require.True(t, ok)
	require.Equal(t, NewEdge(101, "B221"), edge)
	require.Equal(t, 1, g.NumberOfEdges())
}

func TestNodeIdKindsNeverCollide(t *testing.T) {
	// same code string, different kinds: two distinct vertices
	g := NewGraph()
	airport := NewAirportNode("STAR")
	marker := NewProcedureMarker("STAR")

	g.AddEdge(airport, NewWaypointNode("wsk52p21e"), NewEdge(1, "SID"))
	require.True(t, g.HasNode(airport))
	require.False(t, g.HasNode(marker))
}
