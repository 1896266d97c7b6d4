// Command aoc22 solves Advent of Code 2022 puzzles. The puzzle input is read
// from standard input and the answers are printed one per line.
package main

import (
	"bytes"
	_ "embed"

	"github.com/proboscidea/aoc"
	"github.com/proboscidea/aoc/valves"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed aoc22.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// network parses the valves of the input. Both parts share the result.
func (s solver) network() (*valves.Network, error) {
	return aoc.Memo(s.Puzzle, "network", func() (*valves.Network, error) {
		n, err := valves.Parse(bytes.NewReader(s.Input()))
		if err != nil {
			return nil, err
		}
		if u := n.Unreachable(); len(u) > 0 {
			s.Debugf("valves never reached from %s: %v", valves.Start, u)
		}
		return n, nil
	})
}

/*
want=1651

Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
*/
func (s solver) D16p1() (any, error) {
	n, err := s.network()
	if err != nil {
		return nil, err
	}
	best, ok := valves.BestPath(n.FindPaths(30))
	if !ok {
		return 0, nil
	}
	s.Debug("opening order: ", best)
	return best.Released(), nil
}

// want=1707
func (s solver) D16p2() (any, error) {
	n, err := s.network()
	if err != nil {
		return nil, err
	}
	pair, err := n.BestPair(n.FindPaths(26))
	if err != nil {
		return nil, err
	}
	s.Debugf("opening orders: %v | %v", pair[0], pair[1])
	return pair.Released(), nil
}
