package main

import (
	"flag"

	"github.com/gamecss/routefinder/pkg/compiler"
	"github.com/gamecss/routefinder/pkg/logger"
	"github.com/gamecss/routefinder/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	navdataPath := flag.String("navdata", util.NavdataPath(), "path of navigraph data for aerosoft")
	graphPath := flag.String("graph", util.GraphPath(), "output path of the compiled graph")
	infoPath := flag.String("info", util.InfoPath(), "output path of the compiled info catalog")
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	dc := compiler.NewDataCompiler(*navdataPath, log)
	if err := dc.Compile(); err != nil {
		log.Fatal("compile failed", zap.Error(err))
	}

	graph, err := dc.GetGraphData()
	if err != nil {
		log.Fatal("compile failed", zap.Error(err))
	}
	info, err := dc.GetInfoData()
	if err != nil {
		log.Fatal("compile failed", zap.Error(err))
	}

	var g errgroup.Group
	g.Go(func() error {
		return graph.WriteGraph(*graphPath)
	})
	g.Go(func() error {
		return info.WriteInfoCatalog(*infoPath)
	})
	if err := g.Wait(); err != nil {
		log.Fatal("saving compiled data failed", zap.Error(err))
	}

	log.Info("saved compiled route data",
		zap.String("graph", *graphPath), zap.String("info", *infoPath))
}
