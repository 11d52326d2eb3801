// Package router maps location paths to pages and tracks the current
// location with browser-style history.
package router

import (
	"strings"
)

// Page identifies a screen.
type Page int

const (
	PageNotFound Page = iota
	PageHome
	PageAbout
	PageProjects
	PageSkills
	PageContact
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageAbout:
		return "about"
	case PageProjects:
		return "projects"
	case PageSkills:
		return "skills"
	case PageContact:
		return "contact"
	default:
		return "not-found"
	}
}

// Route binds a path to a page.
type Route struct {
	Path  string
	Label string
	Page  Page
}

// Routes is the fixed route table, in navigation order.
var Routes = []Route{
	{Path: "/", Label: "Home", Page: PageHome},
	{Path: "/about", Label: "About", Page: PageAbout},
	{Path: "/projects", Label: "Projects", Page: PageProjects},
	{Path: "/skills", Label: "Skills", Page: PageSkills},
	{Path: "/contact", Label: "Contact", Page: PageContact},
}

// NotFound is returned by Resolve for unmatched paths.
var NotFound = Route{Path: "*", Label: "Not Found", Page: PageNotFound}

// Normalize canonicalises a path: query and fragment dropped, leading slash
// ensured, trailing slashes trimmed, empty becomes "/".
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// Resolve returns the route for path, or NotFound. Matching is exact after
// normalisation; routes carry no parameters.
func Resolve(path string) Route {
	path = Normalize(path)
	for _, r := range Routes {
		if r.Path == path {
			return r
		}
	}
	return NotFound
}

// PathFor returns the path bound to page, or "/" for unknown pages.
func PathFor(page Page) string {
	for _, r := range Routes {
		if r.Page == page {
			return r.Path
		}
	}
	return "/"
}
