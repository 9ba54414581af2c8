package network

import "sort"

// kShortestPaths returns up to k loopless simple paths from src to dst,
// shortest first, ties broken by lexicographic node order (spec §4.9,
// §9) — Yen's algorithm over the unit-cost BFS primitive, grounded on
// the same adjacency-iteration idiom as shortestFeasiblePath but
// restricted to the currently active (residual > 0) edges, since a path
// precomputed over an already-exhausted edge could never be admitted.
//
// Returned paths exclude src and include dst, matching the Hops
// convention used throughout this package.
func (g *Graph) kShortestPaths(src, dst, k int) [][]int {
	first := g.restrictedShortestPath(src, dst, nil, nil)
	if first == nil {
		return nil
	}

	found := [][]int{first}
	var candidates []candidateEntry

	for len(found) < k {
		prev := found[len(found)-1]
		full := append([]int{src}, prev...)

		for j := 0; j < len(full)-1; j++ {
			rootPath := full[: j+1 : j+1]
			spurNode := rootPath[len(rootPath)-1]

			excludedEdges := map[[2]int]bool{}
			for _, p := range found {
				pf := append([]int{src}, p...)
				if len(pf) > j && pathsShareRoot(pf, rootPath) {
					excludedEdges[[2]int{pf[j], pf[j+1]}] = true
				}
			}
			excludedNodes := map[int]bool{}
			for _, n := range rootPath[:len(rootPath)-1] {
				excludedNodes[n] = true
			}

			spur := g.restrictedShortestPath(spurNode, dst, excludedNodes, excludedEdges)
			if spur == nil {
				continue
			}
			total := append(append([]int{}, rootPath[1:]...), spur...)
			if containsPath(found, total) || containsCandidate(candidates, total) {
				continue
			}
			candidates = append(candidates, candidateEntry{path: total})
		}

		if len(candidates) == 0 {
			break
		}
		sort.Slice(candidates, func(i, j int) bool {
			return lessPath(candidates[i].path, candidates[j].path)
		})
		best := candidates[0].path
		candidates = candidates[1:]
		found = append(found, best)
	}

	return found
}

type candidateEntry struct {
	path []int
}

func pathsShareRoot(full, root []int) bool {
	if len(full) < len(root) {
		return false
	}
	for i, n := range root {
		if full[i] != n {
			return false
		}
	}
	return true
}

func containsPath(paths [][]int, p []int) bool {
	for _, q := range paths {
		if equalPath(p, q) {
			return true
		}
	}
	return false
}

func containsCandidate(cs []candidateEntry, p []int) bool {
	for _, c := range cs {
		if equalPath(c.path, p) {
			return true
		}
	}
	return false
}

func equalPath(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// lessPath orders by length first, then lexicographically by node id
// (spec §9: "ties resolved by lexicographic node order of the paths").
func lessPath(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// restrictedShortestPath is unit-cost BFS from src to dst over active
// edges (weight > 0), skipping any node in excludedNodes (other than
// src) and any directed edge in excludedEdges. Neighbours are visited in
// ascending node id, so among several shortest paths the
// lexicographically smallest one is returned. Returns nil if dst is
// unreachable under the restriction.
func (g *Graph) restrictedShortestPath(src, dst int, excludedNodes map[int]bool, excludedEdges map[[2]int]bool) []int {
	dist := make([]int, g.numNodes)
	prev := make([]int, g.numNodes)
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int{src}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == dst {
			break
		}
		next := append([]int(nil), g.adjOut[u]...)
		sort.SliceStable(next, func(a, b int) bool { return g.edges[next[a]].to < g.edges[next[b]].to })
		for _, eid := range next {
			e := g.edges[eid]
			if e.weight <= 0 {
				continue
			}
			v := e.to
			if excludedNodes[v] {
				continue
			}
			if excludedEdges[[2]int{u, v}] {
				continue
			}
			if dist[v] != -1 {
				continue
			}
			dist[v] = dist[u] + 1
			prev[v] = u
			queue = append(queue, v)
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
