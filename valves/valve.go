// Package valves finds how much pressure can be released from a network of
// valves joined by tunnels, by one agent or by two agents working together.
//
// A Network is built once from its valves. Building it computes, for every
// valve, the number of minutes needed to walk to each valve that has a
// positive flow rate. FindPaths then enumerates every order in which valves
// can be opened within a time budget, and MaxPressure and MaxPressurePair
// reduce those paths to an answer.
package valves

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLine is returned for a line that does not describe a valve.
	ErrMalformedLine = errors.New("valves: malformed valve line")

	// ErrDuplicateValve is returned when two valves share a label.
	ErrDuplicateValve = errors.New("valves: duplicate valve")

	// ErrUnknownValve is returned when a tunnel leads to a valve that does
	// not exist.
	ErrUnknownValve = errors.New("valves: tunnel to unknown valve")

	// ErrNoStart is returned when the network has no Start valve.
	ErrNoStart = errors.New("valves: no start valve")

	// ErrTooManyValves is returned when more valves have a positive flow
	// rate than an activation set can hold.
	ErrTooManyValves = errors.New("valves: too many valves with flow")

	// ErrNoDisjointPair is returned when no two paths open disjoint sets of
	// valves, so two agents cannot be assigned.
	ErrNoDisjointPair = errors.New("valves: no disjoint pair of paths")
)

// Valve is a node of the network.
type Valve struct {
	Label    string
	FlowRate int
	Tunnels  []string

	// navTimes maps the label of every other valve with a positive flow
	// rate to the minutes needed to walk there. Set once by NewNetwork.
	navTimes map[string]int
}

var valveRx = regexp.MustCompile(`^Valve (\w+) has flow rate=(\d+); tunnels? leads? to valves? (\w+(?:, \w+)*)$`)

// ParseValve parses a line of the form
//
//	Valve BB has flow rate=13; tunnels lead to valves CC, AA
func ParseValve(line string) (*Valve, error) {
	m := valveRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	flow, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: flow rate of %s: %v", ErrMalformedLine, m[1], err)
	}
	return &Valve{
		Label:    m[1],
		FlowRate: flow,
		Tunnels:  strings.Split(m[3], ", "),
	}, nil
}

// NavTime returns the minutes needed to walk from v to the valve labeled
// to. It is only defined for valves with a positive flow rate other than v.
func (v *Valve) NavTime(to string) (int, bool) {
	t, ok := v.navTimes[to]
	return t, ok
}

func (v *Valve) String() string {
	return fmt.Sprintf("Valve %s: flow_rate=%d, tunnels=(%s);", v.Label, v.FlowRate, strings.Join(v.Tunnels, ", "))
}
