package cli

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lexstat/internal/stream"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	*RootOptions
	Include  string
	Exclude  string
	Contains string
	Regex    string
	Limit    int
}

// SearchResult holds the output of the search command.
type SearchResult struct {
	Words   []string `json:"words"`
	Limit   int      `json:"limit"`
	Sources []string `json:"sources"`
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the union by substring or regex",
		Long: `Search the deduplicated union of the selected sources for words
matching a substring (--contains) or a regular expression (--regex).
Exactly one of the two must be given.

Sources are streamed in selection order and reading stops as soon as
the match limit is reached; matches are sorted before printing.

Examples:
  lexstat search --contains 丙
  lexstat search --regex '^..$' --limit 20`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Include, "include", "", "comma-separated source names to include (empty = all)")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", "comma-separated source names to exclude")
	cmd.Flags().StringVar(&opts.Contains, "contains", "", "substring to match")
	cmd.Flags().StringVar(&opts.Regex, "regex", "", "regular expression to match")
	cmd.Flags().IntVar(&opts.Limit, "limit", 50, "stop after this many matches")

	return cmd
}

func runSearch(opts *SearchOptions, cmd *cobra.Command) error {
	// Predicate problems are configuration errors: fail before any
	// registry or word-file access.
	if (opts.Contains != "") == (opts.Regex != "") {
		return WrapExitError(ExitCommandError, "invalid search", stream.ErrPredicate)
	}
	pred := stream.Predicate{Contains: opts.Contains}
	if opts.Regex != "" {
		re, err := regexp.Compile(opts.Regex)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --regex", err)
		}
		pred.Regex = re
	}

	sel, err := loadSelection(opts.RootOptions, opts.Include, opts.Exclude)
	if err != nil {
		return err
	}

	words, err := stream.Search(sel.Sources(), pred, opts.Limit)
	if err != nil {
		return asExitError(err)
	}

	result := &SearchResult{Words: words, Limit: opts.Limit, Sources: sel.Names()}
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(result, func(w io.Writer) {
		rows := make([][]string, 0, len(result.Words))
		for i, word := range result.Words {
			rows = append(rows, []string{strconv.Itoa(i + 1), word})
		}
		renderTable(w, "Search results", []string{"#", "word"}, rows)
		fmt.Fprintf(w, "shown %d (limit=%d), sources=[%s]\n",
			len(result.Words), result.Limit, strings.Join(result.Sources, " "))
	})
}
