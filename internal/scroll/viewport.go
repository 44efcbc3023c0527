package scroll

import "sync"

// Viewport is an in-process EventSource. ScrollTo dispatches to every listener.
type Viewport struct {
	mu        sync.Mutex
	y         float64
	listeners map[int]func(float64)
	nextID    int
}

func NewViewport() *Viewport {
	return &Viewport{listeners: make(map[int]func(float64))}
}

func (v *Viewport) ScrollY() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.y
}

func (v *Viewport) AddScrollListener(fn func(float64)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// Listeners is the number of registered listeners.
func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// ScrollTo moves the viewport and fires a scroll event.
func (v *Viewport) ScrollTo(y float64) {
	v.mu.Lock()
	v.y = y
	fns := make([]func(float64), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(y)
	}
}
