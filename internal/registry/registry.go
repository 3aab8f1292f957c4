package registry

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Entry describes one word-list source declared in the registry file.
type Entry struct {
	// Name uniquely identifies the source.
	Name string `yaml:"name"`

	// Type classifies the source (e.g. "dict", "wiki", "list").
	Type string `yaml:"type"`

	// Ref records where the raw list came from.
	Ref string `yaml:"ref"`

	// File optionally overrides the word file name. Empty means
	// "<name>.txt".
	File string `yaml:"file,omitempty"`
}

type registryFile struct {
	Sources []Entry `yaml:"sources"`
}

// Registry is the ordered list of declared sources plus the directory
// holding their word files. The declaration order is the stable order
// that assigns mask bit positions downstream.
type Registry struct {
	dir     string
	entries []Entry
}

// Load reads and validates the registry file. dir is the directory the
// word files live in.
//
// The raw YAML document is unified with the embedded CUE schema before
// decoding, so a malformed file fails with every structural problem
// reported at once, before any word file is read.
func Load(sourcesFile, dir string) (*Registry, error) {
	data, err := os.ReadFile(sourcesFile)
	if err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("sources file: %v", err)}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("sources file %s: %v", sourcesFile, err)}
	}
	if err := validateSchema(raw); err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("sources file %s:\n%v", sourcesFile, err)}
	}

	var rf registryFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("sources file %s: %v", sourcesFile, err)}
	}

	seen := make(map[string]bool, len(rf.Sources))
	for _, e := range rf.Sources {
		if seen[e.Name] {
			return nil, &ConfigError{Message: fmt.Sprintf("sources file %s: duplicate source name %q", sourcesFile, e.Name)}
		}
		seen[e.Name] = true
	}

	return &Registry{dir: dir, entries: rf.Sources}, nil
}

// validateSchema unifies the decoded YAML document with #Registry from
// the embedded schema and validates for concreteness.
func validateSchema(raw any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("internal schema error: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Registry"))
	unified := def.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", cueerrors.Details(err, nil))
	}
	return nil
}

// Dir returns the word-list directory.
func (r *Registry) Dir() string { return r.dir }

// Entries returns the declared sources in registry order.
func (r *Registry) Entries() []Entry { return r.entries }

// Names returns the declared source names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Path returns the word file path for an entry.
func (r *Registry) Path(e Entry) string {
	file := e.File
	if file == "" {
		file = e.Name + ".txt"
	}
	return filepath.Join(r.dir, file)
}
