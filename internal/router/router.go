// Package router precomputes all-pairs shortest paths over a routegraph and
// answers fastest-route queries from the resulting tables.
package router

import (
	"math"

	"github.com/antigravity/transport-catalogue/internal/routegraph"
)

// Route is the result of a successful BuildRoute query.
type Route struct {
	TotalWeight float64
	Edges       []int // edge ids, in travel order
}

// Router holds the dense dist/nextEdge tables computed once from a Graph.
// Queries are read-only after construction.
type Router struct {
	graph    *routegraph.Graph
	dist     [][]float64
	nextEdge [][]int // -1 when no path, or u==v
}

const noEdge = -1

// New precomputes all-pairs shortest paths over g using a Floyd-Warshall-
// style in-place relaxation with a fixed k,i,j loop order for determinism,
// additionally tracking the first edge of each shortest path so routes can
// be reconstructed hop by hop. Grounded on
// katalvlaran-lvlath/matrix/impl_floydwarshall.go's floydWarshallInPlace,
// extended with next-edge tracking that library doesn't need.
func New(g *routegraph.Graph) *Router {
	n := g.VertexCount
	dist := make([][]float64, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
			next[i][j] = noEdge
		}
	}

	// Seed with direct edges; keep the cheapest parallel edge between any
	// two vertices and remember which edge achieved it.
	for edgeID, edge := range g.Edges {
		if edge.Weight < dist[edge.From][edge.To] {
			dist[edge.From][edge.To] = edge.Weight
			next[edge.From][edge.To] = edgeID
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj := dist[k][j]
				if math.IsInf(dkj, 1) {
					continue
				}
				cand := dik + dkj
				if cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return &Router{graph: g, dist: dist, nextEdge: next}
}

// BuildRoute returns the fastest path from vertex from to vertex to. Reports
// false if unreachable. If from == to, the route is empty and has zero
// weight.
func (r *Router) BuildRoute(from, to int) (Route, bool) {
	if from == to {
		return Route{TotalWeight: 0, Edges: nil}, true
	}
	if math.IsInf(r.dist[from][to], 1) {
		return Route{}, false
	}

	var edges []int
	current := from
	for current != to {
		edgeID := r.nextEdge[current][to]
		if edgeID == noEdge {
			// Should not happen given dist[from][to] is finite, but guards
			// against an inconsistent table rather than looping forever.
			return Route{}, false
		}
		edges = append(edges, edgeID)
		current = r.graph.Edges[edgeID].To
	}

	return Route{TotalWeight: r.dist[from][to], Edges: edges}, true
}

// Distance returns the precomputed shortest-path weight from u to v, +Inf if
// unreachable. Exposed for testing the triangle inequality property.
func (r *Router) Distance(u, v int) float64 {
	return r.dist[u][v]
}
