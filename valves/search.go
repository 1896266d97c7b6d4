package valves

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/proboscidea/aoc"
)

// FindPaths returns every path from the start valve that opens valves with
// a positive flow rate, each at most once, within minutes. Walking a tunnel
// takes a minute and so does opening a valve.
//
// Every path is returned, not only those that cannot be extended: when two
// agents split the valves, the best plan for one of them may stop early.
// The start record itself is not returned.
func (n *Network) FindPaths(minutes int) []*Path {
	var endpoints []*Path
	q := aoc.MinQueue[*Path]()
	q.PushValue(startPath(), 0)
	q.While(func(it *aoc.PQI[*Path]) bool {
		curr := it.V
		v := n.valves[curr.Label]
		for label, navTime := range v.navTimes {
			if curr.Visited(label) {
				continue
			}
			opened := curr.Minute + navTime + 1
			if opened > minutes {
				continue
			}
			next := &Path{
				Minute: opened,
				Cost:   curr.Cost - (minutes-opened)*n.valves[label].FlowRate,
				Label:  label,
				prev:   curr,
			}
			q.PushValue(next, next.Cost)
		}
		if curr.prev != nil {
			endpoints = append(endpoints, curr)
		}
		return true
	})
	return endpoints
}

// BestPath returns the path in paths with the lowest cost. It reports false
// if paths is empty.
func BestPath(paths []*Path) (*Path, bool) {
	if len(paths) == 0 {
		return nil, false
	}
	return slices.MinFunc(paths, func(a, b *Path) int {
		return cmp.Compare(a.Cost, b.Cost)
	}), true
}

// MaxPressure returns the most pressure one agent can release in minutes.
// It is 0 if no valve can be opened in time.
func (n *Network) MaxPressure(minutes int) int {
	best, ok := BestPath(n.FindPaths(minutes))
	if !ok {
		return 0
	}
	return best.Released()
}

// Pair is the plan of two agents that never open the same valve.
type Pair [2]*Path

// Released returns the pressure released by both agents.
func (p Pair) Released() int {
	return p[0].Released() + p[1].Released()
}

// BestPair returns the two paths in paths that open disjoint sets of valves
// and together have the lowest cost. Only the cheapest path for each set of
// opened valves is considered, whatever order it opens them in.
//
// It returns ErrNoDisjointPair if no two paths open disjoint sets, as when
// the network has a single valve with flow.
func (n *Network) BestPair(paths []*Path) (Pair, error) {
	bySet := make(map[uint64]*Path)
	for _, p := range paths {
		s := n.set(p)
		if b, ok := bySet[s]; !ok || p.Cost < b.Cost {
			bySet[s] = p
		}
	}

	type entry struct {
		set  uint64
		path *Path
	}
	sets := make([]entry, 0, len(bySet))
	for s, p := range bySet {
		sets = append(sets, entry{s, p})
	}
	slices.SortFunc(sets, func(a, b entry) int {
		if c := cmp.Compare(a.path.Cost, b.path.Cost); c != 0 {
			return c
		}
		return cmp.Compare(a.set, b.set)
	})

	var best Pair
	bestCost := math.MaxInt
	for i := 0; i+1 < len(sets); i++ {
		// Costs only grow from here on.
		if sets[i].path.Cost+sets[i+1].path.Cost >= bestCost {
			break
		}
		for j := i + 1; j < len(sets); j++ {
			c := sets[i].path.Cost + sets[j].path.Cost
			if c >= bestCost {
				break
			}
			if sets[i].set&sets[j].set == 0 {
				best = Pair{sets[i].path, sets[j].path}
				bestCost = c
				break
			}
		}
	}
	if best[0] == nil {
		return Pair{}, fmt.Errorf("%w among %d sets of valves", ErrNoDisjointPair, len(sets))
	}
	return best, nil
}

// MaxPressurePair returns the most pressure two agents can release in
// minutes, opening valves independently but never the same one.
func (n *Network) MaxPressurePair(minutes int) (int, error) {
	p, err := n.BestPair(n.FindPaths(minutes))
	if err != nil {
		return 0, err
	}
	return p.Released(), nil
}
