// Package router maps tour paths to views and keeps the navigation history
// Back walks.
package router

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/aussiebroadwan/heroes/pkg/slogx"
)

var ErrNoRoute = errors.New("router: no route")

// Params holds the values bound to a pattern's :name segments.
type Params map[string]string

// View is activated each time its route becomes current.
type View interface {
	Init(ctx context.Context, params Params)
}

// Route is a resolved navigation target.
type Route struct {
	Path    string // as navigated, after redirects
	Pattern string
	Params  Params
}

// ParamRule rejects a path whose bound parameters it does not accept.
type ParamRule func(Params) bool

// PositiveInt accepts paths whose name parameter parses as an integer > 0.
func PositiveInt(name string) ParamRule {
	return func(p Params) bool {
		n, err := strconv.Atoi(p[name])
		return err == nil && n > 0
	}
}

type entry struct {
	segments []string
	pattern  string
	view     View
	rules    []ParamRule
}

type Router struct {
	mu        sync.Mutex
	entries   []entry
	redirects map[string]string
	history   []Route
}

func New() *Router {
	return &Router{redirects: map[string]string{}}
}

// Handle registers view for pattern. Segments starting with ':' bind a
// parameter; everything else matches literally.
func (r *Router) Handle(pattern string, view View, rules ...ParamRule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry{
		segments: split(pattern),
		pattern:  pattern,
		view:     view,
		rules:    rules,
	})
}

// Redirect sends exact matches of from to to.
func (r *Router) Redirect(from, to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirects[clean(from)] = to
}

// Navigate activates the view for path and pushes it onto the history.
func (r *Router) Navigate(ctx context.Context, path string) (Route, error) {
	r.mu.Lock()
	route, view, err := r.resolve(path)
	if err != nil {
		r.mu.Unlock()
		return Route{}, err
	}
	r.history = append(r.history, route)
	r.mu.Unlock()

	slogx.FromContext(ctx).Debug("navigated", "path", route.Path, "pattern", route.Pattern)
	view.Init(ctx, route.Params)
	return route, nil
}

// Back re-activates the previous history entry. With no previous entry it
// does nothing and reports false.
func (r *Router) Back(ctx context.Context) bool {
	r.mu.Lock()
	if len(r.history) < 2 {
		r.mu.Unlock()
		return false
	}
	r.history = r.history[:len(r.history)-1]
	route := r.history[len(r.history)-1]
	_, view, err := r.resolve(route.Path)
	r.mu.Unlock()

	log := slogx.FromContext(ctx)
	if err != nil {
		log.Error("history entry no longer resolves", "path", route.Path, "error", err)
		return false
	}

	log.Debug("navigated back", "path", route.Path)
	view.Init(ctx, route.Params)
	return true
}

// Current reports the active route, if any navigation happened yet.
func (r *Router) Current() (Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.history) == 0 {
		return Route{}, false
	}
	return r.history[len(r.history)-1], true
}

// resolve must be called with mu held.
func (r *Router) resolve(path string) (Route, View, error) {
	path = clean(path)
	if to, ok := r.redirects[path]; ok {
		path = clean(to)
	}

	segments := split(path)
	for _, e := range r.entries {
		params, ok := match(e.segments, segments)
		if !ok || !accepts(e.rules, params) {
			continue
		}
		return Route{Path: path, Pattern: e.pattern, Params: params}, e.view, nil
	}
	return Route{}, nil, fmt.Errorf("%w for %q", ErrNoRoute, path)
}

func match(pattern, segments []string) (Params, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}

	params := Params{}
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			params[name] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}

func accepts(rules []ParamRule, params Params) bool {
	for _, rule := range rules {
		if !rule(params) {
			return false
		}
	}
	return true
}

// clean normalises path to a leading slash and no trailing slash.
func clean(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return "/" + strings.Trim(path, "/")
}

func split(path string) []string {
	trimmed := strings.Trim(clean(path), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
