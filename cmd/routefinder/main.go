package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gamecss/routefinder/pkg"
	da "github.com/gamecss/routefinder/pkg/datastructure"
	"github.com/gamecss/routefinder/pkg/engine/routing"
	"github.com/gamecss/routefinder/pkg/logger"
	"github.com/gamecss/routefinder/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	graphPath := flag.String("graph", util.GraphPath(), "path of the compiled graph")
	infoPath := flag.String("info", util.InfoPath(), "path of the compiled info catalog")
	near := flag.Float64("near", 0, "list fixes within this radius in nautical miles of the airport instead of routing")
	flag.Parse()

	wantArgs := 2
	if *near > 0 {
		wantArgs = 1
	}
	if flag.NArg() != wantArgs {
		fmt.Fprintln(os.Stderr, "usage: routefinder [flags] <ICAO of orig> <ICAO of dest>")
		fmt.Fprintln(os.Stderr, "       routefinder [flags] -near <nm> <ICAO>")
		os.Exit(2)
	}
	for _, code := range flag.Args() {
		if len(code) != pkg.ICAO_LENGTH {
			fmt.Fprintln(os.Stderr, "airport codes must be 4-character ICAO identifiers")
			os.Exit(2)
		}
	}

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	var (
		graph *da.Graph
		info  *da.InfoCatalog
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		graph, err = da.ReadGraph(*graphPath)
		return err
	})
	g.Go(func() error {
		var err error
		info, err = da.ReadInfoCatalog(*infoPath)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Fatal("unable to load compiled data", zap.Error(err))
	}

	calculator, err := routing.NewRouteCalculator(graph, info, log)
	if err != nil {
		log.Fatal("unable to build route calculator", zap.Error(err))
	}

	if *near > 0 {
		waypoints, err := calculator.NearbyWaypoints(flag.Arg(0), *near)
		if err != nil {
			if expectedOutcome(err) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			log.Fatal("nearby fix lookup failed", zap.Error(err))
		}
		for _, waypoint := range waypoints {
			line := fmt.Sprintf("%s %.6f %.6f", waypoint.Name, waypoint.Position.Lat, waypoint.Position.Lon)
			if waypoint.IsNavaid() {
				line += fmt.Sprintf(" %.1f", waypoint.Frequency)
			}
			fmt.Println(line)
		}
		return
	}

	orig, dest := flag.Arg(0), flag.Arg(1)
	result, err := calculator.Calculate(orig, dest)
	if err != nil {
		if expectedOutcome(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Fatal("route calculation failed", zap.Error(err))
	}

	fmt.Println(strings.Join(result.DisplayRoute, " "))
	fmt.Printf("distance: %.1f nm\n", result.Distance)
}

// expectedOutcome reports whether err is a user-reportable query outcome
// rather than a load or internal failure.
func expectedOutcome(err error) bool {
	return errors.Is(err, util.ErrNoResult) || errors.Is(err, util.ErrNotFound)
}
