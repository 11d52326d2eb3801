package router

// Change describes one location change.
type Change struct {
	From  string
	To    string
	Route Route
	Cause Cause
}

// Cause says what triggered a location change.
type Cause int

const (
	CausePush Cause = iota
	CauseReplace
	CauseBack
	CauseForward
)

// Router holds the history stack and notifies listeners on every change,
// whatever triggered it.
type Router struct {
	entries   []string
	index     int
	listeners []func(Change)
}

// New returns a router positioned at initial.
func New(initial string) *Router {
	return &Router{entries: []string{Normalize(initial)}}
}

// CurrentPath returns the current normalised location.
func (r *Router) CurrentPath() string {
	return r.entries[r.index]
}

// Current returns the route for the current location.
func (r *Router) Current() Route {
	return Resolve(r.CurrentPath())
}

// OnChange registers fn for every location change.
func (r *Router) OnChange(fn func(Change)) {
	r.listeners = append(r.listeners, fn)
}

// Navigate pushes path, discarding any forward entries. Navigating to the
// current path is a no-op and reports false.
func (r *Router) Navigate(path string) bool {
	path = Normalize(path)
	from := r.CurrentPath()
	if path == from {
		return false
	}
	r.entries = append(r.entries[:r.index+1], path)
	r.index++
	r.emit(from, CausePush)
	return true
}

// Replace swaps the current entry, as direct location entry does.
func (r *Router) Replace(path string) {
	from := r.CurrentPath()
	r.entries[r.index] = Normalize(path)
	r.emit(from, CauseReplace)
}

// Back moves one entry back. It reports false at the start of history.
func (r *Router) Back() bool {
	if r.index == 0 {
		return false
	}
	from := r.CurrentPath()
	r.index--
	r.emit(from, CauseBack)
	return true
}

// Forward moves one entry forward. It reports false at the end of history.
func (r *Router) Forward() bool {
	if r.index >= len(r.entries)-1 {
		return false
	}
	from := r.CurrentPath()
	r.index++
	r.emit(from, CauseForward)
	return true
}

// CanBack reports whether Back would move.
func (r *Router) CanBack() bool { return r.index > 0 }

// CanForward reports whether Forward would move.
func (r *Router) CanForward() bool { return r.index < len(r.entries)-1 }

func (r *Router) emit(from string, cause Cause) {
	to := r.CurrentPath()
	change := Change{From: from, To: to, Route: Resolve(to), Cause: cause}
	for _, fn := range r.listeners {
		fn(change)
	}
}
