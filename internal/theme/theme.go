// Package theme owns the light/dark preference: it resolves the initial
// value from persisted storage, writes changes through, and notifies
// subscribers so every themed view re-renders from the same value.
package theme

import (
	"errors"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/prefs"
)

// Preference is the visual mode.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// DefaultStorageKey is the key the preference is persisted under.
const DefaultStorageKey = "portfolio-theme"

// Parse converts a stored or user-supplied string to a Preference.
func Parse(s string) (Preference, bool) {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

// Valid reports whether p is one of the two known preferences.
func (p Preference) Valid() bool {
	return p == Light || p == Dark
}

// Other returns the opposite preference.
func (p Preference) Other() Preference {
	if p == Light {
		return Dark
	}
	return Light
}

func (p Preference) String() string {
	return string(p)
}

// Reader is the capability handed to consumers that only render.
type Reader interface {
	Get() Preference
}

// Options configures a Controller.
type Options struct {
	Store      prefs.Store
	StorageKey string
	// Default is used when storage is empty or unreadable. It must be Light
	// or Dark; callers resolve a "system" setting before constructing.
	Default Preference
	Logger  *logger.Logger
}

type subscriber struct {
	id int
	fn func(Preference)
}

// Controller is the single theme store injected at the application root.
type Controller struct {
	store    prefs.Store
	key      string
	fallback Preference
	log      *logger.Logger

	mu          sync.Mutex
	current     Preference
	resolved    bool
	nextID      int
	subscribers []subscriber
}

// NewController builds a controller. Storage is not read until the first Get.
func NewController(opts Options) *Controller {
	key := opts.StorageKey
	if key == "" {
		key = DefaultStorageKey
	}
	fallback := opts.Default
	if !fallback.Valid() {
		fallback = Dark
	}
	store := opts.Store
	if store == nil {
		store = prefs.NewMemory()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Controller{
		store:    store,
		key:      key,
		fallback: fallback,
		log:      log.Component("theme"),
	}
}

// Get returns the current preference, reading storage on first access.
func (c *Controller) Get() Preference {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resolveLocked()
	return c.current
}

func (c *Controller) resolveLocked() {
	if c.resolved {
		return
	}
	c.resolved = true
	c.current = c.fallback

	raw, err := c.store.Get(c.key)
	if err != nil {
		if !errors.Is(err, prefs.ErrNotFound) {
			c.log.WarnErr(err, "theme preference unreadable, using default")
		}
		return
	}

	if p, ok := Parse(raw); ok {
		c.current = p
		return
	}
	c.log.WithFields(map[string]any{"value": raw}).Warn("stored theme preference invalid, using default")
}

// Set commits p, persists it, then notifies subscribers. Persistence
// failures are logged and otherwise ignored. Invalid values are ignored.
func (c *Controller) Set(p Preference) {
	if !p.Valid() {
		c.log.WithFields(map[string]any{"value": string(p)}).Warn("ignoring invalid theme preference")
		return
	}

	c.mu.Lock()
	c.resolveLocked()
	c.current = p
	subs := make([]subscriber, len(c.subscribers))
	copy(subs, c.subscribers)
	c.mu.Unlock()

	if err := c.store.Set(c.key, string(p)); err != nil {
		c.log.WarnErr(err, "theme preference not persisted")
	}

	for _, s := range subs {
		s.fn(p)
	}
}

// Toggle switches to the other preference.
func (c *Controller) Toggle() {
	c.Set(c.Get().Other())
}

// Subscribe registers fn to be called with every committed preference. The
// returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Preference)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subscribers {
			if s.id == id {
				c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
				return
			}
		}
	}
}

var _ Reader = (*Controller)(nil)
