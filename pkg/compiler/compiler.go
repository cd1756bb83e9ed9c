// Package compiler turns raw Aerosoft navigraph data into the routing graph
// and the airport/waypoint catalog. Three one-shot phases, strictly ordered:
// navaids, then airway edges, then airport procedures.
package compiler

import (
	"encoding/csv"
	"os"
	"path/filepath"

	da "github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/geo"
	"github.com/gamecss/routefinder/pkg/util"
	"go.uber.org/zap"
)

type DataCompiler struct {
	navdataPath string
	log         *zap.Logger

	graph *da.Graph
	info  *da.InfoCatalog

	navaidFrequency map[string]float64

	navaidsRead bool
	edgeRead    bool
	airportRead bool
}

// NewDataCompiler builds a compiler over the navdata directory rooted at
// navdataPath. Every instance owns its graph and catalog; nothing is shared
// between compilers.
func NewDataCompiler(navdataPath string, log *zap.Logger) *DataCompiler {
	return &DataCompiler{
		navdataPath:     navdataPath,
		log:             log,
		graph:           da.NewGraph(),
		info:            da.NewInfoCatalog(),
		navaidFrequency: make(map[string]float64),
	}
}

// Compile runs the three phases in order.
func (dc *DataCompiler) Compile() error {
	if err := dc.ReadNavaids(); err != nil {
		return err
	}
	if err := dc.ReadEdges(); err != nil {
		return err
	}
	return dc.ReadAirports()
}

// GetGraphData returns the compiled graph. Fails until both the edge phase
// and the airport phase have completed.
func (dc *DataCompiler) GetGraphData() (*da.Graph, error) {
	if !dc.edgeRead || !dc.airportRead {
		return nil, util.WrapErrorf(nil, util.ErrNotReady, "haven't read edges and airports yet")
	}
	return dc.graph, nil
}

// GetInfoData returns the compiled catalog. Fails until both the edge phase
// and the airport phase have completed.
func (dc *DataCompiler) GetInfoData() (*da.InfoCatalog, error) {
	if !dc.edgeRead || !dc.airportRead {
		return nil, util.WrapErrorf(nil, util.ErrNotReady, "haven't read edges and airports yet")
	}
	return dc.info, nil
}

// ReadNavaids parses the navaid table into a geohash -> broadcast frequency
// map, used by the later phases to annotate waypoints that coincide with a
// radio navaid.
func (dc *DataCompiler) ReadNavaids() error {
	if dc.navaidsRead {
		return util.WrapErrorf(nil, util.ErrAlreadyRead, "navaids already read")
	}

	dc.log.Info("reading navaids")
	filename := filepath.Join(dc.navdataPath, "Navaids.txt")
	rows, err := readDelimitedFile(filename)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if len(row) < 8 {
			return util.WrapErrorf(nil, util.ErrDataCorruption, "%s: navaid row has %d fields", filename, len(row))
		}
		frequency, lat, lon, err := parseFloats3(row[2], row[6], row[7])
		if err != nil {
			return util.WrapErrorf(err, util.ErrDataCorruption, "%s: malformed navaid row", filename)
		}
		hashed := geo.EncodeGeohash(geo.NewCoordinate(lat, lon))
		dc.navaidFrequency[hashed] = frequency
	}

	dc.log.Info("navaids read", zap.Int("navaids", len(dc.navaidFrequency)))
	dc.navaidsRead = true
	return nil
}

// ReadEdges parses the airway segment table. Each "A" row opens an airway,
// each following "S" row adds one directed segment of it. Both endpoints are
// registered in the catalog.
func (dc *DataCompiler) ReadEdges() error {
	if dc.edgeRead {
		return util.WrapErrorf(nil, util.ErrAlreadyRead, "edge already read")
	}
	if !dc.navaidsRead {
		return util.WrapErrorf(nil, util.ErrReadOrder, "the navaids must be read before the edge reading")
	}

	dc.log.Info("reading edges")
	filename := filepath.Join(dc.navdataPath, "ATS.txt")
	rows, err := readDelimitedFile(filename)
	if err != nil {
		return err
	}

	airwayName := ""
	for _, row := range rows {
		switch row[0] {
		case "A":
			if len(row) < 2 {
				return util.WrapErrorf(nil, util.ErrDataCorruption, "%s: airway header without a name", filename)
			}
			airwayName = row[1]
		case "S":
			if airwayName == "" {
				return util.WrapErrorf(nil, util.ErrDataCorruption, "%s: segment row before any airway header", filename)
			}
			if len(row) < 10 {
				return util.WrapErrorf(nil, util.ErrDataCorruption, "%s: segment row has %d fields", filename, len(row))
			}
			if err := dc.readSegment(row, airwayName); err != nil {
				return util.WrapErrorf(err, util.ErrDataCorruption, "%s: malformed segment row", filename)
			}
		}
	}

	dc.log.Info("edges read",
		zap.Int("vertices", dc.graph.NumberOfVertices()),
		zap.Int("edges", dc.graph.NumberOfEdges()))
	dc.edgeRead = true
	return nil
}

func (dc *DataCompiler) readSegment(row []string, airwayName string) error {
	startLat, startLon, err := parseFloats2(row[2], row[3])
	if err != nil {
		return err
	}
	endLat, endLon, err := parseFloats2(row[5], row[6])
	if err != nil {
		return err
	}
	distance, err := util.StringToFloat64(row[9])
	if err != nil {
		return err
	}

	start := dc.registerWaypointOverwrite(row[1], geo.NewCoordinate(startLat, startLon))
	end := dc.registerWaypointOverwrite(row[4], geo.NewCoordinate(endLat, endLon))

	return dc.addEdge(da.NewWaypointNode(start), da.NewWaypointNode(end),
		da.NewEdge(distance, airwayName))
}

// registerWaypointOverwrite stores the waypoint under its geohash, replacing
// any previous entry, and returns the geohash.
func (dc *DataCompiler) registerWaypointOverwrite(name string, position geo.Coordinate) string {
	hashed := geo.EncodeGeohash(position)
	dc.info.Waypoints[hashed] = da.NewWaypoint(name, position, dc.navaidFrequency[hashed])
	return hashed
}

// registerWaypointIfAbsent stores the waypoint only when its geohash is new,
// preserving any frequency recorded earlier.
func (dc *DataCompiler) registerWaypointIfAbsent(hashed string, waypoint da.Waypoint) {
	if _, ok := dc.info.Waypoints[hashed]; !ok {
		dc.info.Waypoints[hashed] = waypoint
	}
}

// addEdge inserts the edge unless an identical one is already stored.
// Re-inserting the same pair with the same distance is a no-op; a divergent
// distance for the same pair means the source contradicts itself.
func (dc *DataCompiler) addEdge(from, to da.NodeId, edge da.Edge) error {
	if existing, ok := dc.graph.GetEdge(from, to); ok {
		if !da.Eq(existing.Distance, edge.Distance) {
			return util.WrapErrorf(nil, util.ErrDataCorruption,
				"conflicting distances for edge %s->%s: %f vs %f",
				from.Code, to.Code, existing.Distance, edge.Distance)
		}
		if existing.Label == edge.Label {
			return nil
		}
	}
	dc.graph.AddEdge(from, to, edge)
	return nil
}

func readDelimitedFile(filename string) ([][]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrDataCorruption, "%s is corrupted", filename)
	}
	return rows, nil
}

func parseFloats2(a, b string) (float64, float64, error) {
	fa, err := util.StringToFloat64(a)
	if err != nil {
		return 0, 0, err
	}
	fb, err := util.StringToFloat64(b)
	if err != nil {
		return 0, 0, err
	}
	return fa, fb, nil
}

func parseFloats3(a, b, c string) (float64, float64, float64, error) {
	fa, fb, err := parseFloats2(a, b)
	if err != nil {
		return 0, 0, 0, err
	}
	fc, err := util.StringToFloat64(c)
	if err != nil {
		return 0, 0, 0, err
	}
	return fa, fb, fc, nil
}
