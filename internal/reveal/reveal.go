// Package reveal models the one-shot entrance of page sections: hidden until first
// seen, then visible for good, with children staggered in order.
package reveal

import (
	"fmt"
	"sync"
	"time"
)

type State int

const (
	Hidden State = iota
	Visible
)

func (s State) String() string {
	if s == Visible {
		return "visible"
	}
	return "hidden"
}

// Variants is the timing of a group's children.
type Variants struct {
	Stagger       time.Duration
	DelayChildren time.Duration
}

var (
	Hero       = Variants{Stagger: 200 * time.Millisecond, DelayChildren: 300 * time.Millisecond}
	About      = Variants{Stagger: 100 * time.Millisecond, DelayChildren: 200 * time.Millisecond}
	Experience = Variants{Stagger: 300 * time.Millisecond, DelayChildren: 200 * time.Millisecond}
	Projects   = Variants{Stagger: 200 * time.Millisecond, DelayChildren: 100 * time.Millisecond}
	CTA        = Variants{Stagger: 200 * time.Millisecond, DelayChildren: 100 * time.Millisecond}
	Contact    = Variants{Stagger: 200 * time.Millisecond, DelayChildren: 100 * time.Millisecond}
)

// Group is one section and its children.
type Group struct {
	Name     string
	Variants Variants
	Children int

	mu       sync.Mutex
	revealed bool
}

func NewGroup(name string, v Variants, children int) *Group {
	return &Group{Name: name, Variants: v, Children: children}
}

func (g *Group) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.revealed {
		return Visible
	}
	return Hidden
}

// Observe records whether the group is in the viewport. It returns true only for the
// first in-view observation; later entries and exits change nothing.
func (g *Group) Observe(inView bool) bool {
	if !inView {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.revealed {
		return false
	}
	g.revealed = true
	return true
}

// ChildDelay is the entrance delay of the i-th child.
func (g *Group) ChildDelay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return g.Variants.DelayChildren + time.Duration(i)*g.Variants.Stagger
}

// Delays returns ChildDelay for every child.
func (g *Group) Delays() []time.Duration {
	out := make([]time.Duration, g.Children)
	for i := range out {
		out[i] = g.ChildDelay(i)
	}
	return out
}

// CSSDelay formats d as a CSS time value, e.g. "0.30s".
func CSSDelay(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
