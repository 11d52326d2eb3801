package router

// Item is a rendered navigation entry.
type Item struct {
	Path   string
	Label  string
	Active bool
}

// Items renders the navigation for currentPath.
func Items(currentPath string) []Item {
	currentPath = Normalize(currentPath)
	items := make([]Item, 0, len(Routes))
	for _, r := range Routes {
		items = append(items, Item{
			Path:   r.Path,
			Label:  r.Label,
			Active: r.Path == currentPath,
		})
	}
	return items
}

// Menu is the collapsed navigation shown on narrow layouts.
type Menu struct {
	open bool
}

// Open reports whether the menu is expanded.
func (m *Menu) Open() bool { return m.open }

// Toggle flips the menu.
func (m *Menu) Toggle() { m.open = !m.open }

// Close collapses the menu.
func (m *Menu) Close() { m.open = false }

// Attach closes m on every location change of r.
func (m *Menu) Attach(r *Router) {
	r.OnChange(func(Change) { m.Close() })
}
