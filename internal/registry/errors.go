package registry

import (
	"fmt"
	"strings"
)

// ConfigError reports a configuration problem: a malformed registry
// file, an unknown source name in an include/exclude list, or a
// selection that ends up empty. Configuration errors are detected
// before any word file is read.
type ConfigError struct {
	// Message is a human-readable description.
	Message string

	// Unknown lists the offending source names, if the problem is an
	// unknown name in a selection list.
	Unknown []string

	// Known lists the registry's source names, so callers can fix the
	// selection without a second run.
	Known []string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if len(e.Unknown) > 0 {
		return fmt.Sprintf("%s: %s (known sources: %s)",
			e.Message, strings.Join(e.Unknown, ", "), strings.Join(e.Known, ", "))
	}
	return e.Message
}

// MissingSource identifies one selected source whose word file could not
// be produced.
type MissingSource struct {
	Name string
	Path string
}

// MissingSourcesError reports every selected source whose backing word
// file is unavailable. All missing sources are collected before the
// error is returned, so callers can repair the pipeline in one pass
// instead of discovering failures one run at a time.
type MissingSourcesError struct {
	Missing []MissingSource
}

// Error implements the error interface.
func (e *MissingSourcesError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = fmt.Sprintf("%s (%s)", m.Name, m.Path)
	}
	return fmt.Sprintf("missing word file(s) for %d source(s): %s",
		len(e.Missing), strings.Join(parts, ", "))
}

// Names returns the missing source names in selection order.
func (e *MissingSourcesError) Names() []string {
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		names[i] = m.Name
	}
	return names
}
