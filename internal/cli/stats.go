package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/lexstat/internal/mask"
	"github.com/roach88/lexstat/internal/stats"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Include   string
	Exclude   string
	Pairwise  bool
	Exclusive bool
}

// SourceTotal is one source's distinct-word count.
type SourceTotal struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// StatsResult holds the full output of the stats command.
type StatsResult struct {
	Sources    []SourceTotal       `json:"sources"`
	Union      int                 `json:"union"`
	SumCounts  int                 `json:"sum_counts"`
	Duplicates int                 `json:"duplicates"`
	Pairwise   []stats.PairwiseRow `json:"pairwise,omitempty"`
	Exclusive  []SourceTotal       `json:"exclusive,omitempty"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show overlap statistics for the selected sources",
		Long: `Show per-source counts, union/duplicate summary, pairwise overlap
metrics (intersection, Jaccard, overlap coefficient, containment) and
exclusive counts for the selected sources.

All metrics derive from one membership-mask frequency table built over
the selection, so they are mutually consistent by construction.

Examples:
  lexstat stats
  lexstat stats --include dictA,dictB
  lexstat stats --exclude wikiX --pairwise=false`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Include, "include", "", "comma-separated source names to include (empty = all)")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", "comma-separated source names to exclude")
	cmd.Flags().BoolVar(&opts.Pairwise, "pairwise", true, "show pairwise overlap metrics")
	cmd.Flags().BoolVar(&opts.Exclusive, "exclusive", true, "show exclusive counts")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	sel, err := loadSelection(opts.RootOptions, opts.Include, opts.Exclude)
	if err != nil {
		return err
	}
	if opts.Pairwise && sel.Len() < 2 {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("pairwise metrics require at least 2 selected sources, got %d (pass --pairwise=false for a single source)", sel.Len()))
	}

	table, err := mask.Build(sel.Sources())
	if err != nil {
		return asExitError(err)
	}
	agg, err := stats.New(sel.Names(), table)
	if err != nil {
		return err
	}
	slog.Debug("frequency table built", "masks", len(table), "words", agg.WordCount())

	result := &StatsResult{Union: agg.WordCount()}
	for i, name := range agg.Names() {
		total := agg.Total(i)
		result.Sources = append(result.Sources, SourceTotal{Name: name, Words: total})
		result.SumCounts += total
	}
	result.Duplicates = result.SumCounts - result.Union

	if opts.Pairwise {
		rows, err := agg.PairwiseRows()
		if err != nil {
			return WrapExitError(ExitCommandError, "pairwise metrics", err)
		}
		result.Pairwise = rows
	}
	if opts.Exclusive {
		for i, name := range agg.Names() {
			result.Exclusive = append(result.Exclusive, SourceTotal{Name: name, Words: agg.Exclusive(i)})
		}
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(result, func(w io.Writer) {
		renderStats(w, result)
	})
}

func renderStats(w io.Writer, result *StatsResult) {
	rows := make([][]string, 0, len(result.Sources))
	for _, s := range result.Sources {
		rows = append(rows, []string{s.Name, formatCount(s.Words)})
	}
	renderTable(w, "Per-source counts", []string{"source", "count"}, rows)

	renderTable(w, "Summary", []string{"metric", "value"}, [][]string{
		{"Union (selected)", formatCount(result.Union)},
		{"Sum(counts)", formatCount(result.SumCounts)},
		{"Cross-source duplicates", formatCount(result.Duplicates)},
	})

	if len(result.Pairwise) > 0 {
		rows = rows[:0]
		for _, p := range result.Pairwise {
			rows = append(rows, []string{
				p.A, p.B,
				formatCount(p.Intersection),
				fmt.Sprintf("%.4f", p.Jaccard),
				fmt.Sprintf("%.4f", p.Overlap),
				fmt.Sprintf("%.4f", p.ContainmentAB),
				fmt.Sprintf("%.4f", p.ContainmentBA),
			})
		}
		renderTable(w, "Pairwise overlap",
			[]string{"A", "B", "intersection", "jaccard", "overlap", "A_in_B", "B_in_A"}, rows)
	}

	if len(result.Exclusive) > 0 {
		rows = rows[:0]
		for _, s := range result.Exclusive {
			rows = append(rows, []string{s.Name, formatCount(s.Words)})
		}
		renderTable(w, "Exclusive counts (only in that source)", []string{"source", "exclusive"}, rows)
	}
}
