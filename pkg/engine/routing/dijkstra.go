package routing

import (
	"github.com/gamecss/routefinder/pkg"
	"github.com/gamecss/routefinder/pkg/costfunction"
	da "github.com/gamecss/routefinder/pkg/datastructure"
)

// Dijkstra runs a single-pair shortest-path search over the airway graph.
// Edge weights come from the cost function; anything weighed at INF_WEIGHT or
// above is skipped, which is how the SID/STAR constraints prune the search.
type Dijkstra struct {
	graph        *da.Graph
	costFunction costfunction.CostFunction

	dist       map[da.NodeId]float64
	parent     map[da.NodeId]da.NodeId
	parentEdge map[da.NodeId]da.Edge
	heapNodes  map[da.NodeId]*da.PriorityQueueNode[da.NodeId]
	settled    map[da.NodeId]bool

	pq *da.MinHeap[da.NodeId]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph, costFunction costfunction.CostFunction) *Dijkstra {
	return &Dijkstra{
		graph:        graph,
		costFunction: costFunction,
		dist:         make(map[da.NodeId]float64),
		parent:       make(map[da.NodeId]da.NodeId),
		parentEdge:   make(map[da.NodeId]da.Edge),
		heapNodes:    make(map[da.NodeId]*da.PriorityQueueNode[da.NodeId]),
		settled:      make(map[da.NodeId]bool),
		pq:           da.NewFourAryHeap[da.NodeId](),
	}
}

// ShortestPath searches from s to t. Returns the path node sequence, the
// edges between consecutive path nodes, the total cost, and whether a
// finite-cost path exists. Nodes only reachable through excluded edges are
// never settled.
func (us *Dijkstra) ShortestPath(s, t da.NodeId) ([]da.NodeId, []da.Edge, float64, bool) {
	if !us.graph.HasNode(s) {
		return nil, nil, pkg.INF_WEIGHT, false
	}

	sNode := da.NewPriorityQueueNode(0, s)
	us.dist[s] = 0
	us.heapNodes[s] = sNode
	us.pq.Insert(sNode)

	for !us.pq.IsEmpty() {
		uNode, err := us.pq.ExtractMin()
		if err != nil {
			break
		}
		u := uNode.GetItem()
		us.settled[u] = true
		us.numSettledNodes++
		if u == t {
			break
		}

		us.graph.ForOutEdgesOf(u, func(v da.NodeId, edge da.Edge) {
			if us.settled[v] {
				return
			}

			weight := us.costFunction.Cost(u, v, edge)
			if da.Ge(weight, pkg.INF_WEIGHT) {
				return
			}

			newDist := us.dist[u] + weight
			vNode, labelled := us.heapNodes[v]
			if labelled && da.Ge(newDist, us.dist[v]) {
				return
			}

			us.dist[v] = newDist
			us.parent[v] = u
			us.parentEdge[v] = edge
			if labelled {
				// newDist is strictly below the node's current rank here
				// and settled nodes were filtered above, so the key is
				// always accepted
				_ = us.pq.DecreaseKey(vNode, newDist)
			} else {
				vNode = da.NewPriorityQueueNode(newDist, v)
				us.heapNodes[v] = vNode
				us.pq.Insert(vNode)
			}
		})
	}

	totalDist, reached := us.dist[t]
	if !reached || da.Ge(totalDist, pkg.INF_WEIGHT) {
		return nil, nil, pkg.INF_WEIGHT, false
	}

	nodes, edges := us.unpackPath(s, t)
	return nodes, edges, totalDist, true
}

func (us *Dijkstra) unpackPath(s, t da.NodeId) ([]da.NodeId, []da.Edge) {
	nodes := make([]da.NodeId, 0)
	edges := make([]da.Edge, 0)
	for cur := t; ; {
		nodes = append(nodes, cur)
		if cur == s {
			break
		}
		edges = append(edges, us.parentEdge[cur])
		cur = us.parent[cur]
	}

	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return nodes, edges
}
