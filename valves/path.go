package valves

import (
	"fmt"
	"strings"

	"github.com/proboscidea/aoc"
)

// Path is one step of a valve-opening sequence: the valve Label was opened
// at Minute, and Cost is the negated pressure released by every valve opened
// so far over the whole time budget. Lower cost is better.
//
// Paths are immutable and link back to the step before them, so paths that
// share a prefix share its records. The first record of every path is the
// start valve, which is not opened.
type Path struct {
	Minute int
	Cost   int
	Label  string

	prev *Path
}

func startPath() *Path {
	return &Path{Label: Start}
}

// Prev returns the step before p, or nil if p is the start.
func (p *Path) Prev() *Path {
	return p.prev
}

// Visited reports whether the path ending at p has been at label.
func (p *Path) Visited(label string) bool {
	for n := p; n != nil; n = n.prev {
		if n.Label == label {
			return true
		}
	}
	return false
}

// Labels returns the labels of the valves opened along p, in the order they
// were opened.
func (p *Path) Labels() []string {
	var s aoc.Stack[string]
	for n := p; n != nil && n.prev != nil; n = n.prev {
		s.Push(n.Label)
	}
	out := make([]string, 0, s.Len())
	s.While(func(l string) bool {
		out = append(out, l)
		return true
	})
	return out
}

// Released returns the pressure released by the valves opened along p.
func (p *Path) Released() int {
	return -p.Cost
}

func (p *Path) String() string {
	return fmt.Sprintf("%s @%d released=%d", strings.Join(p.Labels(), ","), p.Minute, p.Released())
}
