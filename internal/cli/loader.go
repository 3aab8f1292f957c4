package cli

import (
	"errors"
	"log/slog"

	"github.com/roach88/lexstat/internal/registry"
)

// loadRegistry loads and validates the sources registry.
func loadRegistry(opts *RootOptions) (*registry.Registry, error) {
	reg, err := registry.Load(opts.SourcesFile, opts.Dir)
	if err != nil {
		return nil, asExitError(err)
	}
	slog.Debug("registry loaded", "file", opts.SourcesFile, "sources", len(reg.Entries()))
	return reg, nil
}

// loadSelection resolves include/exclude lists against the registry.
// Selection happens before any word file is read, so configuration
// errors never cost a partial run.
func loadSelection(opts *RootOptions, include, exclude string) (*registry.Selection, error) {
	reg, err := loadRegistry(opts)
	if err != nil {
		return nil, err
	}
	sel, err := reg.Select(include, exclude)
	if err != nil {
		return nil, asExitError(err)
	}
	slog.Debug("sources selected", "selection", sel)
	return sel, nil
}

// asExitError maps engine error types onto CLI exit codes. Both
// configuration errors and data-availability errors are the caller's to
// fix, so both exit with ExitCommandError.
func asExitError(err error) error {
	var configErr *registry.ConfigError
	if errors.As(err, &configErr) {
		return WrapExitError(ExitCommandError, "configuration error", err)
	}
	var missingErr *registry.MissingSourcesError
	if errors.As(err, &missingErr) {
		return WrapExitError(ExitCommandError, "sources unavailable", err)
	}
	return err
}
