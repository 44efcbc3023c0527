// Package scroll maps a vertical scroll offset to the navigation section currently in view.
package scroll

import (
	"strings"
	"sync"
)

// DefaultOffset is the height of the fixed navigation bar.
const DefaultOffset = 100

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// SectionID is Href without the leading '#'.
func (n NavItem) SectionID() string { return strings.TrimPrefix(n.Href, "#") }

// DefaultNav lists the page sections top to bottom.
var DefaultNav = []NavItem{
	{Name: "About", Href: "#about"},
	{Name: "Experience", Href: "#experience"},
	{Name: "Projects", Href: "#projects"},
	{Name: "Contact", Href: "#contact"},
}

// SectionIDs returns the section ids of items in order.
func SectionIDs(items []NavItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.SectionID()
	}
	return ids
}

// Section is the vertical extent of a rendered section.
type Section struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether pos lies in [Top, Top+Height).
func (s Section) Contains(pos float64) bool {
	return pos >= s.Top && pos < s.Top+s.Height
}

// Layout looks up where a section is rendered.
type Layout interface {
	Section(id string) (Section, bool)
}

// LayoutMap is a Layout backed by a map keyed by section id.
type LayoutMap map[string]Section

func (m LayoutMap) Section(id string) (Section, bool) {
	s, ok := m[id]
	return s, ok
}

// NewLayoutMap indexes sections by id.
func NewLayoutMap(sections []Section) LayoutMap {
	m := make(LayoutMap, len(sections))
	for _, s := range sections {
		m[s.ID] = s
	}
	return m
}

// ActiveSection returns the first of ids, in order, whose range contains scrollY+offset.
// Ids missing from layout are skipped.
func ActiveSection(ids []string, layout Layout, scrollY, offset float64) (string, bool) {
	pos := scrollY + offset
	for _, id := range ids {
		s, ok := layout.Section(id)
		if !ok {
			continue
		}
		if s.Contains(pos) {
			return id, true
		}
	}
	return "", false
}

// EventSource delivers scroll offsets, like a browser window.
type EventSource interface {
	ScrollY() float64
	AddScrollListener(fn func(scrollY float64)) (remove func())
}

// Tracker keeps the active section id up to date with an EventSource. Every event
// recomputes from scratch; the latest event wins.
type Tracker struct {
	mu       sync.Mutex
	ids      []string
	layout   Layout
	offset   float64
	active   string
	onChange func(string)
}

type Option func(*Tracker)

func WithOffset(offset float64) Option {
	return func(t *Tracker) { t.offset = offset }
}

// OnChange registers fn to be called whenever the active section id changes.
func OnChange(fn func(active string)) Option {
	return func(t *Tracker) { t.onChange = fn }
}

func NewTracker(ids []string, layout Layout, opts ...Option) *Tracker {
	t := &Tracker{
		ids:    append([]string(nil), ids...),
		layout: layout,
		offset: DefaultOffset,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Mount computes the active section once and then on every event from src.
// The returned function deregisters the listener.
func (t *Tracker) Mount(src EventSource) (unmount func()) {
	remove := src.AddScrollListener(func(y float64) { t.Update(y) })
	t.Update(src.ScrollY())
	var once sync.Once
	return func() { once.Do(remove) }
}

// Update recomputes the active section for scrollY and returns it ("" when none).
func (t *Tracker) Update(scrollY float64) string {
	id, _ := ActiveSection(t.ids, t.layout, scrollY, t.offset)

	t.mu.Lock()
	changed := id != t.active
	t.active = id
	onChange := t.onChange
	t.mu.Unlock()

	if changed && onChange != nil {
		onChange(id)
	}
	return id
}

func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// ScrollTarget resolves an href like "#projects" to the top of that section.
// It reports false when the section does not exist.
func (t *Tracker) ScrollTarget(href string) (float64, bool) {
	s, ok := t.layout.Section(strings.TrimPrefix(href, "#"))
	if !ok {
		return 0, false
	}
	return s.Top, true
}
