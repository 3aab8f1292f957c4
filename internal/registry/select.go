package registry

import (
	"fmt"
	"strings"
)

// Selection is an ordered subset of registry sources. A source's
// position in the selection (0-based) is its ordinal: downstream mask
// building assigns it bit 1<<ordinal. Selections are plain values owned
// by the caller; nothing about a selection persists between engine
// invocations.
type Selection struct {
	registry *Registry
	entries  []Entry
}

// Select resolves comma-separated include and exclude lists into an
// ordered selection. An empty include list means "all known sources".
// Unknown names in either list are a configuration error naming the
// offending name(s) and the known set; so is a selection that ends up
// empty. Registry order is preserved.
func (r *Registry) Select(include, exclude string) (*Selection, error) {
	known := make(map[string]bool, len(r.entries))
	for _, e := range r.entries {
		known[e.Name] = true
	}

	inc := parseCSV(include)
	exc := parseCSV(exclude)

	if bad := unknownNames(inc, known); len(bad) > 0 {
		return nil, &ConfigError{Message: "unknown --include source(s)", Unknown: bad, Known: r.Names()}
	}
	if bad := unknownNames(exc, known); len(bad) > 0 {
		return nil, &ConfigError{Message: "unknown --exclude source(s)", Unknown: bad, Known: r.Names()}
	}

	incSet := toSet(inc)
	excSet := toSet(exc)

	var entries []Entry
	for _, e := range r.entries {
		if len(incSet) > 0 && !incSet[e.Name] {
			continue
		}
		if excSet[e.Name] {
			continue
		}
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil, &ConfigError{Message: "no sources selected after include/exclude"}
	}

	return &Selection{registry: r, entries: entries}, nil
}

// Len returns the number of selected sources.
func (s *Selection) Len() int { return len(s.entries) }

// Names returns the selected source names in ordinal order.
func (s *Selection) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Sources returns one WordSource per selected source, in ordinal order.
func (s *Selection) Sources() []WordSource {
	sources := make([]WordSource, len(s.entries))
	for i, e := range s.entries {
		sources[i] = FileSource{SourceName: e.Name, Path: s.registry.Path(e)}
	}
	return sources
}

func parseCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func unknownNames(names []string, known map[string]bool) []string {
	var bad []string
	for _, n := range names {
		if !known[n] {
			bad = append(bad, n)
		}
	}
	return bad
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// String implements fmt.Stringer for log output.
func (s *Selection) String() string {
	return fmt.Sprintf("[%s]", strings.Join(s.Names(), " "))
}
