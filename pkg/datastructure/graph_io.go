package datastructure

import (
	"bufio"
	"encoding/gob"
	"os"

	"github.com/dsnet/compress/bzip2"
	"github.com/gamecss/routefinder/pkg/util"
)

// graphFileData is the on-disk form of a compiled graph. Exported fields so
// gob can reach them; the live Graph keeps its adjacency unexported.
type graphFileData struct {
	Adjacency map[NodeId]map[NodeId]Edge
	NumEdges  int
}

// WriteGraph persists the graph as bzip2-compressed gob.
func (g *Graph) WriteGraph(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	defer w.Flush()

	return gob.NewEncoder(w).Encode(graphFileData{
		Adjacency: g.adjacency,
		NumEdges:  g.numEdges,
	})
}

func ReadGraph(filename string) (*Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	var data graphFileData
	if err := gob.NewDecoder(bufio.NewReader(bz)).Decode(&data); err != nil {
		return nil, util.WrapErrorf(err, util.ErrDataCorruption, "graph file %s is corrupted", filename)
	}
	if data.Adjacency == nil {
		data.Adjacency = make(map[NodeId]map[NodeId]Edge)
	}
	return &Graph{adjacency: data.Adjacency, numEdges: data.NumEdges}, nil
}

// WriteInfoCatalog persists the catalog as bzip2-compressed gob.
func (info *InfoCatalog) WriteInfoCatalog(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	defer bz.Close()

	w := bufio.NewWriter(bz)
	defer w.Flush()

	return gob.NewEncoder(w).Encode(info)
}

func ReadInfoCatalog(filename string) (*InfoCatalog, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	info := NewInfoCatalog()
	if err := gob.NewDecoder(bufio.NewReader(bz)).Decode(info); err != nil {
		return nil, util.WrapErrorf(err, util.ErrDataCorruption, "info file %s is corrupted", filename)
	}
	return info, nil
}
