package nestscroll

import "reflect"

// ScrollListener observes the unified scroll position of a Coordinator.
//
// Listeners are compared with ==, so the dynamic type must be comparable:
// use a pointer, or NewListenerFunc for a plain function. Func, slice and
// map typed listeners are rejected by AddScrollListener.
type ScrollListener interface {
	OnScroll(p Position)
}

// ListenerFunc adapts a function into a ScrollListener. Create it with
// NewListenerFunc and keep the pointer to remove it later.
type ListenerFunc struct {
	fn func(Position)
}

// NewListenerFunc wraps fn.
func NewListenerFunc(fn func(Position)) *ListenerFunc {
	return &ListenerFunc{fn: fn}
}

// OnScroll calls the wrapped function.
func (f *ListenerFunc) OnScroll(p Position) {
	if f.fn != nil {
		f.fn(p)
	}
}

// listenerRegistry is an ordered set of listeners. The slice is copied on
// every write and never mutated in place, so a dispatch in progress keeps
// iterating the slice it started with.
type listenerRegistry struct {
	items []ScrollListener
}

func (r *listenerRegistry) add(l ScrollListener) bool {
	if l == nil || !comparableListener(l) || r.indexOf(l) >= 0 {
		return false
	}
	items := make([]ScrollListener, len(r.items), len(r.items)+1)
	copy(items, r.items)
	r.items = append(items, l)
	return true
}

func (r *listenerRegistry) remove(l ScrollListener) bool {
	i := r.indexOf(l)
	if i < 0 {
		return false
	}
	items := make([]ScrollListener, 0, len(r.items)-1)
	items = append(items, r.items[:i]...)
	r.items = append(items, r.items[i+1:]...)
	return true
}

func (r *listenerRegistry) indexOf(l ScrollListener) int {
	if !comparableListener(l) {
		return -1
	}
	for i, existing := range r.items {
		if existing == l {
			return i
		}
	}
	return -1
}

func (r *listenerRegistry) size() int {
	return len(r.items)
}

func (r *listenerRegistry) dispatch(p Position) {
	for _, l := range r.items {
		l.OnScroll(p)
	}
}

func comparableListener(l ScrollListener) bool {
	t := reflect.TypeOf(l)
	return t != nil && t.Comparable()
}
