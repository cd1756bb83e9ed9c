package spatialindex

import (
	"testing"

	da "github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/geo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchWithinRadius(t *testing.T) {
	info := da.NewInfoCatalog()
	info.Waypoints["wtq9etjds"] = da.NewWaypoint("BK", geo.NewCoordinate(30.6, 121.42), 323.0)
	info.Waypoints["wtq9b3fhk"] = da.NewWaypoint("PD001", geo.NewCoordinate(31.0, 121.7), 0)
	info.Waypoints["wsk52p21e"] = da.NewWaypoint("DST", geo.NewCoordinate(26.75, 120.0), 0)

	rt := NewRtree()
	rt.Build(info, zap.NewNop())

	// both Pudong-area fixes sit within 60 nm of the field; DST does not
	results := rt.SearchWithinRadius(31.143378, 121.805214, 60.0)
	require.Len(t, results, 2)

	names := make(map[string]bool)
	for _, entry := range results {
		names[entry.GetWaypoint().Name] = true
		require.NotEmpty(t, entry.GetHashedPosition())
	}
	require.True(t, names["BK"])
	require.True(t, names["PD001"])

	require.Empty(t, rt.SearchWithinRadius(0.0, 0.0, 60.0))
}
