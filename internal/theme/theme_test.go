package theme

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/prefs"
)

type failingStore struct {
	getErr error
	setErr error
	value  string
	sets   int
}

func (s *failingStore) Get(string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.value, nil
}

func (s *failingStore) Set(string, string) error {
	s.sets++
	return s.setErr
}

func TestControllerDefaultsWhenStorageEmpty(t *testing.T) {
	c := NewController(Options{Store: prefs.NewMemory(), Default: Dark})
	assert.Equal(t, Dark, c.Get())

	c = NewController(Options{Store: prefs.NewMemory(), Default: Light})
	assert.Equal(t, Light, c.Get())
}

func TestControllerDefaultsWhenStorageUnreadable(t *testing.T) {
	store := &failingStore{getErr: errors.New("io error")}
	c := NewController(Options{Store: store, Default: Dark})
	assert.Equal(t, Dark, c.Get())
}

func TestControllerDefaultsWhenStoredValueCorrupt(t *testing.T) {
	store := prefs.NewMemory()
	require.NoError(t, store.Set(DefaultStorageKey, "purple"))

	c := NewController(Options{Store: store, Default: Dark})
	assert.Equal(t, Dark, c.Get())
}

func TestControllerSetGetRoundTrip(t *testing.T) {
	for _, v := range []Preference{Light, Dark} {
		t.Run(v.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.json")

			c := NewController(Options{Store: prefs.NewFile(path), Default: Dark})
			c.Set(v)
			assert.Equal(t, v, c.Get())

			// Simulated reload: a fresh controller over the same file.
			reloaded := NewController(Options{Store: prefs.NewFile(path), Default: v.Other()})
			assert.Equal(t, v, reloaded.Get())
		})
	}
}

func TestControllerToggle(t *testing.T) {
	c := NewController(Options{Default: Dark})
	c.Toggle()
	assert.Equal(t, Light, c.Get())
	c.Toggle()
	assert.Equal(t, Dark, c.Get())
}

func TestControllerWriteFailureKeepsInMemoryValue(t *testing.T) {
	store := &failingStore{getErr: prefs.ErrNotFound, setErr: errors.New("read-only")}
	c := NewController(Options{Store: store, Default: Dark})

	c.Set(Light)
	assert.Equal(t, Light, c.Get())
	assert.Equal(t, 1, store.sets)
}

func TestControllerIgnoresInvalidValue(t *testing.T) {
	store := &failingStore{getErr: prefs.ErrNotFound}
	c := NewController(Options{Store: store, Default: Dark})

	c.Set(Preference("sepia"))
	assert.Equal(t, Dark, c.Get())
	assert.Zero(t, store.sets)
}

func TestControllerNotifiesSubscribers(t *testing.T) {
	c := NewController(Options{Default: Dark})

	var seen []Preference
	var observedDuringCallback []Preference
	unsubscribe := c.Subscribe(func(p Preference) {
		seen = append(seen, p)
		observedDuringCallback = append(observedDuringCallback, c.Get())
	})

	c.Toggle()
	c.Set(Dark)
	unsubscribe()
	c.Toggle()

	assert.Equal(t, []Preference{Light, Dark}, seen)
	assert.Equal(t, seen, observedDuringCallback)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Preference
		ok   bool
	}{
		{"light", Light, true},
		{" DARK ", Dark, true},
		{"", "", false},
		{"system", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestResolveDefault(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	p, err := ResolveDefault("system", dark)
	require.NoError(t, err)
	assert.Equal(t, Dark, p)

	p, err = ResolveDefault("System", light)
	require.NoError(t, err)
	assert.Equal(t, Light, p)

	p, err = ResolveDefault("", nil)
	require.NoError(t, err)
	assert.Equal(t, Dark, p)

	p, err = ResolveDefault("light", dark)
	require.NoError(t, err)
	assert.Equal(t, Light, p)

	_, err = ResolveDefault("neon", nil)
	assert.Error(t, err)
}
