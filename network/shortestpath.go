package network

import "container/heap"

// shortestFeasiblePath searches for the shortest (fewest-edge) path from
// src to dst using only edges whose residual capacity is >= minGross. Cost
// is 1 per edge (unit-weight Dijkstra, equivalent to BFS since every edge
// has the same cost) — grounded on the teacher's dijkstra package's
// heap-based relaxation loop, adapted to a feasibility threshold instead
// of a weight sum.
//
// Returns the path as a sequence of node ids starting with the first hop
// after src and ending with dst (empty if unreachable).
func (g *Graph) shortestFeasiblePath(src, dst int, minGross float64) []int {
	const unvisited = -1

	dist := make([]int, g.numNodes)
	prev := make([]int, g.numNodes)
	for i := range dist {
		dist[i] = -1
		prev[i] = unvisited
	}
	dist[src] = 0

	pq := &nodeHeap{{node: src, dist: 0}}
	visited := make([]bool, g.numNodes)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(nodeItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}
		for _, eid := range g.adjOut[u] {
			e := g.edges[eid]
			if e.weight < minGross {
				continue
			}
			v := e.to
			newDist := dist[u] + 1
			if dist[v] == -1 || newDist < dist[v] {
				dist[v] = newDist
				prev[v] = u
				heap.Push(pq, nodeItem{node: v, dist: newDist})
			}
		}
	}

	if dist[dst] == -1 {
		return nil
	}

	path := make([]int, 0, dist[dst])
	for v := dst; v != src; v = prev[v] {
		path = append(path, v)
	}
	reverse(path)
	return path
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// nodeItem and nodeHeap implement a min-heap over (node, dist) pairs, the
// same lazy-decrease-key pattern as the teacher's dijkstra package.
type nodeItem struct {
	node int
	dist int
}

type nodeHeap []nodeItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(nodeItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
