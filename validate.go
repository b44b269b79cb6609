package cheat

import (
	"fmt"
	"regexp"
	"slices"
	"sync"
)

// patterns caches compiled adapter patterns by source. Adapter records are
// values, so the cache lives beside them rather than in them.
var patterns sync.Map // string -> *regexp.Regexp

func compilePattern(p string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(p); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(p)
	if err != nil {
		return nil, err
	}
	actual, _ := patterns.LoadOrStore(p, re)
	return actual.(*regexp.Regexp), nil
}

// Validate checks that an adapter record is usable.
func (a Adapter) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("adapter name is required: %w", ErrValidation)
	}
	if len(a.Command) == 0 || a.Command[0] == "" {
		return fmt.Errorf("adapter %q: command is required: %w", a.Name, ErrValidation)
	}
	switch a.Output {
	case OutputText, OutputANSI, OutputMarkdown:
	default:
		return fmt.Errorf("adapter %q: unknown output kind %d: %w", a.Name, a.Output, ErrValidation)
	}
	if a.Pattern != "" {
		if _, err := compilePattern(a.Pattern); err != nil {
			return fmt.Errorf("adapter %q: pattern: %v: %w", a.Name, err, ErrValidation)
		}
	}
	return nil
}

// Serves reports whether the adapter handles topic. An adapter with a Pattern
// serves matching topics; otherwise one with Pages serves exactly those; an
// adapter with neither serves everything.
func (a Adapter) Serves(topic string) bool {
	if a.Pattern != "" {
		re, err := compilePattern(a.Pattern)
		if err != nil {
			return false
		}
		return re.MatchString(topic)
	}
	if len(a.Pages) > 0 {
		return slices.Contains(a.Pages, topic)
	}
	return true
}

// validateQuery checks a client identifier and query before they are stored.
func validateQuery(clientID, query string) error {
	if clientID == "" {
		return fmt.Errorf("client id is required: %w", ErrValidation)
	}
	if query == "" {
		return fmt.Errorf("query is required: %w", ErrValidation)
	}
	return nil
}
