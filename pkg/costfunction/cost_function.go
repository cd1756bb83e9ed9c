package costfunction

import (
	"github.com/gamecss/routefinder/pkg"
	"github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/util"
)

type CostFunction interface {
	// Cost weighs the edge from prev to next. A result >= pkg.INF_WEIGHT
	// excludes the edge from the search as if it were absent.
	Cost(prev, next datastructure.NodeId, edge datastructure.Edge) float64
}

// ConstrainedCostFunction enforces the SID/STAR traversal rules: a SID edge
// may be forced onto one exit fix, and a STAR edge is only traversable into
// the destination airport, optionally through one forced entry fix.
type ConstrainedCostFunction struct {
	dest          datastructure.NodeId
	destIsAirport bool
	sidExit       *datastructure.NodeId
	starEntry     *datastructure.NodeId
}

// NewConstrainedCostFunction anchors the function at one (orig, dest) query.
// Forcing an exit or entry fix is only meaningful when the corresponding
// endpoint is an airport reached via a real procedure.
func NewConstrainedCostFunction(orig, dest datastructure.NodeId,
	sidExit, starEntry *datastructure.NodeId) (*ConstrainedCostFunction, error) {
	if sidExit != nil && orig.Kind != pkg.AIRPORT_NODE {
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfiguration,
			"cannot force a SID exit fix for non-airport origin %s", orig.Code)
	}
	if starEntry != nil && dest.Kind != pkg.AIRPORT_NODE {
		return nil, util.WrapErrorf(nil, util.ErrInvalidConfiguration,
			"cannot force a STAR entry fix for non-airport destination %s", dest.Code)
	}
	return &ConstrainedCostFunction{
		dest:          dest,
		destIsAirport: dest.Kind == pkg.AIRPORT_NODE,
		sidExit:       sidExit,
		starEntry:     starEntry,
	}, nil
}

func (cf *ConstrainedCostFunction) Cost(prev, next datastructure.NodeId, edge datastructure.Edge) float64 {
	switch edge.Label {
	case pkg.SID_LABEL:
		if cf.sidExit != nil && next != *cf.sidExit {
			return pkg.INF_WEIGHT
		}
	case pkg.STAR_LABEL:
		if !cf.destIsAirport {
			return pkg.INF_WEIGHT
		}
		if next != cf.dest {
			return pkg.INF_WEIGHT
		}
		if cf.starEntry != nil && prev != *cf.starEntry {
			return pkg.INF_WEIGHT
		}
	}
	return edge.Distance
}
