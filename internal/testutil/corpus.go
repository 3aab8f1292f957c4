package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// CorpusSource describes one fixture source for WriteCorpus.
type CorpusSource struct {
	Name  string
	Type  string // defaults to "dict"
	Ref   string // defaults to "test-fixture"
	Words []string
}

type corpusEntry struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Ref  string `yaml:"ref"`
}

type corpusFile struct {
	Sources []corpusEntry `yaml:"sources"`
}

// WriteCorpus materializes a registry fixture under a temp directory:
// one word file per source plus a sources.yaml declaring them in the
// given order. Returns the word-list directory and the sources file
// path.
func WriteCorpus(t *testing.T, sources []CorpusSource) (dir, sourcesFile string) {
	t.Helper()

	dir = t.TempDir()
	cf := corpusFile{}
	for _, src := range sources {
		entry := corpusEntry{Name: src.Name, Type: src.Type, Ref: src.Ref}
		if entry.Type == "" {
			entry.Type = "dict"
		}
		if entry.Ref == "" {
			entry.Ref = "test-fixture"
		}
		cf.Sources = append(cf.Sources, entry)

		path := filepath.Join(dir, src.Name+".txt")
		data := strings.Join(src.Words, "\n")
		if len(src.Words) > 0 {
			data += "\n"
		}
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatalf("writing word file %s: %v", path, err)
		}
	}

	out, err := yaml.Marshal(cf)
	if err != nil {
		t.Fatalf("marshaling sources.yaml: %v", err)
	}
	sourcesFile = filepath.Join(dir, "sources.yaml")
	if err := os.WriteFile(sourcesFile, out, 0o644); err != nil {
		t.Fatalf("writing %s: %v", sourcesFile, err)
	}
	return dir, sourcesFile
}

// RemoveWordFile deletes one source's word file from a corpus fixture,
// for missing-source scenarios.
func RemoveWordFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.Remove(filepath.Join(dir, name+".txt")); err != nil {
		t.Fatalf("removing word file for %s: %v", name, err)
	}
}
