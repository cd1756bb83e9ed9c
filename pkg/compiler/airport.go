package compiler

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gamecss/routefinder/pkg"
	"github.com/gamecss/routefinder/pkg/concurrent"
	da "github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/geo"
	"github.com/gamecss/routefinder/pkg/util"
	"go.uber.org/zap"
)

// leg types with no stable fix (arc/vector legs); rows carrying one of these
// cannot become graph waypoints and are dropped from the procedure.
var invalidLegTypes = map[string]struct{}{
	"CA": {}, "CD": {}, "CI": {}, "CR": {},
	"VA": {}, "VD": {}, "VI": {}, "VM": {}, "VR": {},
}

// airportData is the outcome of parsing one per-airport procedure file.
type airportData struct {
	icao     string
	position geo.Coordinate
	sid      map[string][]da.Procedure
	star     map[string][]da.Procedure

	// collapsing exit/entry fix per group name; one graph edge each,
	// however many procedures share it
	sidExits    map[string]da.Waypoint
	starEntries map[string]da.Waypoint
}

type airportFileResult struct {
	filename string
	airport  *airportData
	err      error
}

// ReadAirports walks the per-airport procedure files under proc/ and turns
// every SID into an airport->exit edge and every STAR into an entry->airport
// edge. Files are parsed in parallel; the graph and catalog are only touched
// from the merge loop.
func (dc *DataCompiler) ReadAirports() error {
	if dc.airportRead {
		return util.WrapErrorf(nil, util.ErrAlreadyRead, "airport already read")
	}
	if !dc.edgeRead {
		return util.WrapErrorf(nil, util.ErrReadOrder, "the edges must be read before the airport reading")
	}

	dc.log.Info("reading airport sid & star")
	procDir := filepath.Join(dc.navdataPath, "proc")
	files := make([]string, 0)
	err := filepath.WalkDir(procDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	wp := concurrent.NewWorkerPool[string, airportFileResult](runtime.NumCPU(), len(files)+1)
	wp.Start(func(path string) airportFileResult {
		ad, err := dc.parseAirportFile(path)
		return airportFileResult{filename: path, airport: ad, err: err}
	})
	for _, path := range files {
		wp.AddJob(path)
	}
	wp.Close()
	wp.Wait()

	for res := range wp.CollectResults() {
		if res.err != nil {
			return res.err
		}
		if res.airport == nil {
			// no airport header in the file
			continue
		}
		if err := dc.mergeAirport(res.airport); err != nil {
			return err
		}
	}

	dc.log.Info("airports read", zap.Int("airports", len(dc.info.Airports)))
	dc.airportRead = true
	return nil
}

// parseAirportFile reads one procedure file: an airport header block followed
// by SID/STAR blocks, separated by blank lines. Reads dc.navaidFrequency
// only; safe to run concurrently after the navaid phase.
func (dc *DataCompiler) parseAirportFile(path string) (*airportData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ad := &airportData{
		sid:         make(map[string][]da.Procedure),
		star:        make(map[string][]da.Procedure),
		sidExits:    make(map[string]da.Waypoint),
		starEntries: make(map[string]da.Waypoint),
	}

	blocks := strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		lines := strings.Split(block, "\n")

		switch {
		case strings.HasPrefix(lines[0], "A,"):
			fields := strings.Split(lines[0], ",")
			if len(fields) < 5 {
				return nil, util.WrapErrorf(nil, util.ErrDataCorruption, "%s: short airport header", path)
			}
			lat, lon, err := parseFloats2(fields[3], fields[4])
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrDataCorruption, "%s: malformed airport header", path)
			}
			ad.icao = fields[1]
			ad.position = geo.NewCoordinate(lat, lon)

		case strings.HasPrefix(lines[0], "SID,"), strings.HasPrefix(lines[0], "STAR,"):
			if ad.icao == "" {
				return nil, util.WrapErrorf(nil, util.ErrDataCorruption, "%s: procedure block before airport header", path)
			}
			if err := dc.parseProcedureBlock(ad, lines, path); err != nil {
				return nil, err
			}
		}
	}

	if ad.icao == "" {
		return nil, nil
	}
	return ad, nil
}

func (dc *DataCompiler) parseProcedureBlock(ad *airportData, lines []string, path string) error {
	header := strings.Split(lines[0], ",")
	if len(header) < 3 {
		return util.WrapErrorf(nil, util.ErrDataCorruption, "%s: short procedure header", path)
	}
	procType, procName, procRunway := header[0], header[1], header[2]

	nodes := make([]da.Waypoint, 0, len(lines))
	for _, line := range lines {
		row := strings.Split(line, ",")
		if row[0] == pkg.SID_LABEL || row[0] == pkg.STAR_LABEL {
			continue
		}
		if _, invalid := invalidLegTypes[row[0]]; invalid {
			continue
		}
		if len(row) < 4 {
			return util.WrapErrorf(nil, util.ErrDataCorruption, "%s: short procedure node row", path)
		}
		lat, lon, err := parseFloats2(row[2], row[3])
		if err != nil {
			return util.WrapErrorf(err, util.ErrDataCorruption, "%s: malformed procedure node row", path)
		}
		position := geo.NewCoordinate(lat, lon)
		nodes = append(nodes, da.NewWaypoint(row[1], position,
			dc.navaidFrequency[geo.EncodeGeohash(position)]))
	}

	// a procedure with no remaining stable fix is useless
	if len(nodes) == 0 {
		return nil
	}

	procedure := da.Procedure{Name: procName, Runway: procRunway, Nodes: nodes}
	if procType == pkg.SID_LABEL {
		exit := nodes[len(nodes)-1]
		if _, ok := ad.sid[exit.Name]; !ok {
			ad.sidExits[exit.Name] = exit
		}
		ad.sid[exit.Name] = append(ad.sid[exit.Name], procedure)
	} else {
		entry := nodes[0]
		if _, ok := ad.star[entry.Name]; !ok {
			ad.starEntries[entry.Name] = entry
		}
		ad.star[entry.Name] = append(ad.star[entry.Name], procedure)
	}
	return nil
}

// mergeAirport folds one parsed airport into the graph and catalog.
func (dc *DataCompiler) mergeAirport(ad *airportData) error {
	airportNode := da.NewAirportNode(ad.icao)

	for _, exit := range ad.sidExits {
		hashed := geo.EncodeGeohash(exit.Position)
		dc.registerWaypointIfAbsent(hashed, exit)
		distance := geo.CalculateGreatCircleDistance(ad.position, exit.Position)
		if err := dc.addEdge(airportNode, da.NewWaypointNode(hashed),
			da.NewEdge(distance, pkg.SID_LABEL)); err != nil {
			return err
		}
	}

	for _, entry := range ad.starEntries {
		hashed := geo.EncodeGeohash(entry.Position)
		dc.registerWaypointIfAbsent(hashed, entry)
		distance := geo.CalculateGreatCircleDistance(ad.position, entry.Position)
		if err := dc.addEdge(da.NewWaypointNode(hashed), airportNode,
			da.NewEdge(distance, pkg.STAR_LABEL)); err != nil {
			return err
		}
	}

	dc.info.Waypoints[geo.EncodeGeohash(ad.position)] = da.NewWaypoint(ad.icao, ad.position, 0)
	dc.info.Airports[ad.icao] = da.Airport{
		ICAO:     ad.icao,
		Position: ad.position,
		Sid:      ad.sid,
		Star:     ad.star,
	}
	return nil
}
