package costfunction

import (
	"testing"

	"github.com/gamecss/routefinder/pkg"
	da "github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestForcedFixRequiresAirport(t *testing.T) {
	waypoint := da.NewWaypointNode("wsk52p21e")
	airport := da.NewAirportNode("ZSPD")
	exit := da.NewWaypointNode("wtq9etjds")

	_, err := NewConstrainedCostFunction(waypoint, airport, &exit, nil)
	require.ErrorIs(t, err, util.ErrInvalidConfiguration)

	_, err = NewConstrainedCostFunction(airport, waypoint, nil, &exit)
	require.ErrorIs(t, err, util.ErrInvalidConfiguration)

	_, err = NewConstrainedCostFunction(airport, airport, &exit, &exit)
	require.NoError(t, err)
}

func TestCost(t *testing.T) {
	orig := da.NewAirportNode("ZSFZ")
	dest := da.NewAirportNode("ZSPD")
	other := da.NewAirportNode("ZSHC")
	exitFix := da.NewWaypointNode("wsk52p21e")
	entryFix := da.NewWaypointNode("wtq9etjds")
	someFix := da.NewWaypointNode("wtq9b3fhk")

	testCases := []struct {
		name      string
		sidExit   *da.NodeId
		starEntry *da.NodeId
		prev      da.NodeId
		next      da.NodeId
		edge      da.Edge
		want      float64
	}{
		{
			name: "airway edge keeps its distance",
			prev: exitFix, next: someFix,
			edge: da.NewEdge(139.5, "B221"),
			want: 139.5,
		},
		{
			name: "unforced sid edge keeps its distance",
			prev: orig, next: exitFix,
			edge: da.NewEdge(52.3, pkg.SID_LABEL),
			want: 52.3,
		},
		{
			name:    "forced sid exit mismatch is excluded",
			sidExit: &someFix,
			prev:    orig, next: exitFix,
			edge: da.NewEdge(52.3, pkg.SID_LABEL),
			want: pkg.INF_WEIGHT,
		},
		{
			name:    "forced sid exit match keeps its distance",
			sidExit: &exitFix,
			prev:    orig, next: exitFix,
			edge: da.NewEdge(52.3, pkg.SID_LABEL),
			want: 52.3,
		},
		{
			name: "star edge into the destination is allowed",
			prev: entryFix, next: dest,
			edge: da.NewEdge(38.2, pkg.STAR_LABEL),
			want: 38.2,
		},
		{
			name: "star edge into another airport is excluded",
			prev: someFix, next: other,
			edge: da.NewEdge(70.1, pkg.STAR_LABEL),
			want: pkg.INF_WEIGHT,
		},
		{
			name:      "forced star entry mismatch is excluded",
			starEntry: &someFix,
			prev:      entryFix, next: dest,
			edge: da.NewEdge(38.2, pkg.STAR_LABEL),
			want: pkg.INF_WEIGHT,
		},
		{
			name:      "forced star entry match keeps its distance",
			starEntry: &entryFix,
			prev:      entryFix, next: dest,
			edge: da.NewEdge(38.2, pkg.STAR_LABEL),
			want: 38.2,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cf, err := NewConstrainedCostFunction(orig, dest, tt.sidExit, tt.starEntry)
			require.NoError(t, err)
			require.Equal(t, tt.want, cf.Cost(tt.prev, tt.next, tt.edge))
		})
	}
}

func TestStarIntoNonAirportDestination(t *testing.T) {
	orig := da.NewAirportNode("ZSFZ")
	dest := da.NewWaypointNode("wtq9etjds")

	cf, err := NewConstrainedCostFunction(orig, dest, nil, nil)
	require.NoError(t, err)

	// even an edge pointing at the destination is excluded when the
	// destination is not an airport
	cost := cf.Cost(da.NewWaypointNode("wsk52p21e"), dest, da.NewEdge(38.2, pkg.STAR_LABEL))
	require.Equal(t, pkg.INF_WEIGHT, cost)
}
