package datastructure

// Graph is a directed weighted graph keyed by NodeId. At most one edge is
// stored per ordered (from, to) pair; inserting a second one overwrites the
// first. Write-once during compilation, read-many afterward.
type Graph struct {
	adjacency map[NodeId]map[NodeId]Edge
	numEdges  int
}

func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[NodeId]map[NodeId]Edge),
	}
}

// AddEdge inserts or overwrites the edge for (from, to). No reverse edge is
// created; directionality is caller-controlled.
func (g *Graph) AddEdge(from, to NodeId, edge Edge) {
	neighbors, ok := g.adjacency[from]
	if !ok {
		neighbors = make(map[NodeId]Edge)
		g.adjacency[from] = neighbors
	}
	if _, exists := neighbors[to]; !exists {
		g.numEdges++
	}
	neighbors[to] = edge
}

// GetEdge returns the stored edge for (from, to), if any.
func (g *Graph) GetEdge(from, to NodeId) (Edge, bool) {
	edge, ok := g.adjacency[from][to]
	return edge, ok
}

func (g *Graph) HasNode(node NodeId) bool {
	_, ok := g.adjacency[node]
	return ok
}

// ForOutEdgesOf visits every outgoing edge of node.
func (g *Graph) ForOutEdgesOf(node NodeId, fn func(to NodeId, edge Edge)) {
	for to, edge := range g.adjacency[node] {
		fn(to, edge)
	}
}

// ForNodes visits every node that has at least one outgoing edge.
func (g *Graph) ForNodes(fn func(node NodeId)) {
	for node := range g.adjacency {
		fn(node)
	}
}

func (g *Graph) NumberOfVertices() int {
	return len(g.adjacency)
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}
