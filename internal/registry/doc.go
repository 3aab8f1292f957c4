// Package registry loads the source registry: the ordered list of named
// word-list sources the lexicon is assembled from.
//
// The registry file (sources.yaml) declares each source's name, kind and
// provenance ref, plus optionally the word file backing it. Declaration
// order is significant: it fixes each source's position, and positions
// assign mask bits downstream. The file is validated against an embedded
// CUE schema before any word file is touched, so structural problems are
// reported early and completely.
//
// A Selection is an ordered subset of the registry produced by
// include/exclude filtering. Engine packages consume selections, never
// the registry directly, so no process-wide state survives between
// invocations.
//
// Word files are one UTF-8 word per line; blank lines are skipped.
// Iteration is streaming and not restartable: re-acquire the source to
// read it again.
package registry
