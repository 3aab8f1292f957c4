package registry

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// WordSource lazily supplies one source's words. Implementations are
// cheap values; opening acquires whatever backs the source.
type WordSource interface {
	// Name returns the source name.
	Name() string

	// Open acquires a fresh word iterator. Each call returns an
	// independent pass over the source.
	Open() (WordIter, error)
}

// WordIter streams a source's words one at a time. The stream is finite
// and not restartable: once Next returns false, re-acquire the source
// via Open to read it again.
type WordIter interface {
	// Next returns the next word, or ok=false when the stream is
	// exhausted or failed. Check Err after exhaustion.
	Next() (word string, ok bool)

	// Err returns the first error encountered while streaming, if any.
	Err() error

	// Close releases the underlying resource. Safe to call after
	// exhaustion or mid-stream (early exit).
	Close() error
}

// FileSource reads words from a one-word-per-line UTF-8 text file.
// Blank lines are skipped; surrounding whitespace is trimmed.
type FileSource struct {
	SourceName string
	Path       string
}

// Name implements WordSource.
func (s FileSource) Name() string { return s.SourceName }

// Open implements WordSource.
func (s FileSource) Open() (WordIter, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", s.SourceName, err)
	}
	return &fileIter{f: f, sc: bufio.NewScanner(f)}, nil
}

// available reports whether the word file exists.
func (s FileSource) available() error {
	_, err := os.Stat(s.Path)
	return err
}

type fileIter struct {
	f  *os.File
	sc *bufio.Scanner
}

func (it *fileIter) Next() (string, bool) {
	for it.sc.Scan() {
		if w := strings.TrimSpace(it.sc.Text()); w != "" {
			return w, true
		}
	}
	return "", false
}

func (it *fileIter) Err() error { return it.sc.Err() }

func (it *fileIter) Close() error { return it.f.Close() }

// StaticSource serves a fixed in-memory word list. Used by tests and by
// callers that already hold a word set.
type StaticSource struct {
	SourceName string
	Words      []string
}

// Name implements WordSource.
func (s StaticSource) Name() string { return s.SourceName }

// Open implements WordSource.
func (s StaticSource) Open() (WordIter, error) {
	return &staticIter{words: s.Words}, nil
}

type staticIter struct {
	words []string
	pos   int
}

func (it *staticIter) Next() (string, bool) {
	for it.pos < len(it.words) {
		w := strings.TrimSpace(it.words[it.pos])
		it.pos++
		if w != "" {
			return w, true
		}
	}
	return "", false
}

func (it *staticIter) Err() error   { return nil }
func (it *staticIter) Close() error { return nil }

// CheckAvailable verifies that every source's backing can be produced,
// collecting ALL unavailable sources into one MissingSourcesError. A
// partial answer would silently understate every intersection involving
// a missing source, so callers must invoke this before building
// anything from the sources.
func CheckAvailable(sources []WordSource) error {
	var missing []MissingSource
	for _, src := range sources {
		fs, ok := src.(FileSource)
		if !ok {
			continue
		}
		if err := fs.available(); err != nil {
			missing = append(missing, MissingSource{Name: fs.SourceName, Path: fs.Path})
		}
	}
	if len(missing) > 0 {
		return &MissingSourcesError{Missing: missing}
	}
	return nil
}

// CountLines counts the lines of a word file, streamed. Used for
// registry status listings; duplicates and blanks are not collapsed.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return n, nil
}
