package valves

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/proboscidea/aoc"
)

// Start is the label of the valve every agent starts at.
const Start = "AA"

// maxPressurized is the number of valves with flow an activation set holds.
const maxPressurized = 64

// Network is a set of valves joined by tunnels. It is read-only once built.
type Network struct {
	valves map[string]*Valve
	labels []string // sorted

	// pressurized holds the valves with a positive flow rate, sorted by
	// label. A valve's index is its bit in an activation set.
	pressurized []*Valve
	bit         map[string]uint64

	unreachable []string // pressurized, but not reachable from Start
}

// Parse reads one valve per line from r and builds a Network from them.
func Parse(r io.Reader) (*Network, error) {
	var vs []*Valve
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		if s.Text() == "" {
			continue
		}
		v, err := ParseValve(s.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		vs = append(vs, v)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return NewNetwork(vs)
}

// NewNetwork builds a Network from vs and computes the navigation times of
// every valve. Tunnels are one-way: a valve listing a tunnel to another can
// be left through it, but not entered. The valves are owned by the Network
// afterwards.
func NewNetwork(vs []*Valve) (*Network, error) {
	n := &Network{
		valves: make(map[string]*Valve, len(vs)),
		bit:    make(map[string]uint64),
	}
	var g aoc.Graph[string]
	for _, v := range vs {
		if _, ok := n.valves[v.Label]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValve, v.Label)
		}
		n.valves[v.Label] = v
		n.labels = append(n.labels, v.Label)
		g.AddNode(v.Label)
	}
	if _, ok := n.valves[Start]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoStart, Start)
	}
	for _, v := range vs {
		for _, t := range v.Tunnels {
			if _, ok := n.valves[t]; !ok {
				return nil, fmt.Errorf("%w: %s -> %s", ErrUnknownValve, v.Label, t)
			}
			g.AddArc(v.Label, t, 1)
		}
	}
	slices.Sort(n.labels)

	for _, l := range n.labels {
		if v := n.valves[l]; v.FlowRate > 0 {
			n.pressurized = append(n.pressurized, v)
		}
	}
	if len(n.pressurized) > maxPressurized {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(n.pressurized), maxPressurized)
	}
	reach := g.ReachableNodes(Start)
	for i, v := range n.pressurized {
		n.bit[v.Label] = 1 << i
		if !reach[v.Label] {
			n.unreachable = append(n.unreachable, v.Label)
		}
	}

	for _, v := range n.valves {
		v.navTimes = make(map[string]int, len(n.pressurized))
		for l, d := range g.Distances(v.Label) {
			if l != v.Label && n.valves[l].FlowRate > 0 {
				v.navTimes[l] = d
			}
		}
	}
	return n, nil
}

// Valve returns the valve labeled label.
func (n *Network) Valve(label string) (*Valve, bool) {
	v, ok := n.valves[label]
	return v, ok
}

// Labels returns the labels of all valves, sorted.
func (n *Network) Labels() []string {
	return slices.Clone(n.labels)
}

// Pressurized returns the valves with a positive flow rate, sorted by label.
func (n *Network) Pressurized() []*Valve {
	return slices.Clone(n.pressurized)
}

// Unreachable returns the labels of the valves with a positive flow rate
// that no path from the start valve can reach, sorted.
func (n *Network) Unreachable() []string {
	return slices.Clone(n.unreachable)
}

// TotalFlow returns the combined flow rate of all valves.
func (n *Network) TotalFlow() int {
	flows := make([]int, 0, len(n.pressurized))
	for _, v := range n.pressurized {
		flows = append(flows, v.FlowRate)
	}
	return aoc.Sum(flows...)
}

// NavTime returns the minutes needed to walk from the valve labeled from to
// the valve labeled to, which must have a positive flow rate.
func (n *Network) NavTime(from, to string) (int, bool) {
	v, ok := n.valves[from]
	if !ok {
		return 0, false
	}
	return v.NavTime(to)
}

// set returns the activation set of the valves opened along p. The start
// record opens nothing.
func (n *Network) set(p *Path) uint64 {
	var s uint64
	for ; p != nil && p.prev != nil; p = p.prev {
		s |= n.bit[p.Label]
	}
	return s
}
