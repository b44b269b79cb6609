// Package adapter holds the built-in content source records and the lookup
// and argv expansion shared by every fetcher.
package adapter

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/fwojciec/cheat"
)

// Registry is an immutable name-to-adapter lookup.
type Registry struct {
	byName map[string]cheat.Adapter
	order  []string
}

// NewRegistry validates adapters and indexes them by name. Later adapters
// replace earlier ones with the same name but keep the earlier position.
func NewRegistry(adapters ...cheat.Adapter) (*Registry, error) {
	r := &Registry{byName: make(map[string]cheat.Adapter, len(adapters))}
	for _, a := range adapters {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, ok := r.byName[a.Name]; !ok {
			r.order = append(r.order, a.Name)
		}
		r.byName[a.Name] = a
	}
	return r, nil
}

// Lookup returns the adapter registered under name.
func (r *Registry) Lookup(name string) (cheat.Adapter, error) {
	a, ok := r.byName[name]
	if !ok {
		return cheat.Adapter{}, fmt.Errorf("%q: %w", name, cheat.ErrUnknownAdapter)
	}
	return a, nil
}

// Names returns the registered adapter names in sorted order.
func (r *Registry) Names() []string {
	names := slices.Clone(r.order)
	sort.Strings(names)
	return names
}

// Find returns the first adapter, in registration order, that claims topic
// through its Pattern or Pages. Adapters that would serve any topic are not
// considered.
func (r *Registry) Find(topic string) (cheat.Adapter, error) {
	for _, name := range r.order {
		a := r.byName[name]
		if a.Pattern == "" && len(a.Pages) == 0 {
			continue
		}
		if a.Serves(topic) {
			return a, nil
		}
	}
	return cheat.Adapter{}, fmt.Errorf("no adapter for %q: %w", topic, cheat.ErrNotFound)
}

var placeholder = regexp.MustCompile(`\{[a-z]+\}`)

// Expand builds the argv for topic from the adapter's command template.
// Without a Parse function the only variable is {topic}: the topic with the
// adapter's Prefix removed. Unknown placeholders are a validation error.
func Expand(a cheat.Adapter, topic string, opts cheat.Options) ([]string, error) {
	topic = strings.TrimPrefix(topic, a.Prefix)
	vars := map[string]string{"topic": topic}
	if a.Parse != nil {
		var err error
		if vars, err = a.Parse(topic, opts); err != nil {
			return nil, err
		}
	}

	argv := make([]string, len(a.Command))
	for i, arg := range a.Command {
		var missing string
		argv[i] = placeholder.ReplaceAllStringFunc(arg, func(m string) string {
			v, ok := vars[m[1:len(m)-1]]
			if !ok && missing == "" {
				missing = m
			}
			return v
		})
		if missing != "" {
			return nil, fmt.Errorf("%s adapter: unknown placeholder %s: %w", a.Name, missing, cheat.ErrValidation)
		}
	}
	return argv, nil
}

// Resolve returns a copy of a whose relative command path is anchored at
// baseDir. Bare executable names (no path separator) are left for PATH lookup.
func Resolve(a cheat.Adapter, baseDir string) cheat.Adapter {
	if len(a.Command) == 0 || baseDir == "" {
		return a
	}
	exe := a.Command[0]
	if filepath.IsAbs(exe) || !strings.ContainsRune(exe, '/') {
		return a
	}
	a.Command = slices.Clone(a.Command)
	a.Command[0] = filepath.Join(baseDir, exe)
	return a
}
