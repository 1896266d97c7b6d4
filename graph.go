package aoc

import (
	"math"
)

// Graph is a directed graph with integer arc weights.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

// Edge is an ordered pair of nodes.
type Edge[T comparable] struct {
	A, B T
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds a one-way arc from a to b. A two-way link takes two arcs.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// ReachableNodes returns the nodes that can be reached from a by following
// arcs, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// Distances returns the number of arcs on the shortest path from a to every
// node reachable from it, a included at 0. Arc weights are ignored.
func (g *Graph[K]) Distances(a K) map[K]int {
	type hop struct {
		k K
		d int
	}
	dist := map[K]int{a: 0}
	q := NewQueue(hop{a, 0})
	q.While(func(h hop) bool {
		for k := range g.Edges[h.k] {
			if _, ok := dist[k]; ok {
				continue
			}
			dist[k] = h.d + 1
			q.Push(hop{k, h.d + 1})
		}
		return true
	})
	return dist
}

// AllShortestPaths returns the weighted shortest distance between every
// ordered pair of nodes (Floyd-Warshall). Unreachable pairs are math.MaxInt.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		for k2 := range g.Nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
			} else {
				dist[key{k1, k2}] = math.MaxInt
			}
		}
	}
	for k2 := range g.Nodes {
		for k1 := range g.Nodes {
			for k3 := range g.Nodes {
				e12 := dist[key{k1, k2}]
				e23 := dist[key{k2, k3}]
				e13 := dist[key{k1, k3}]
				if e12 == math.MaxInt || e23 == math.MaxInt {
					continue
				}
				if e := e12 + e23; e < e13 {
					dist[key{k1, k3}] = e
				}
			}
		}
	}
	return dist
}
