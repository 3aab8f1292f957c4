package cli

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lexstat/internal/mask"
	"github.com/roach88/lexstat/internal/stats"
)

// MasksOptions holds flags for the masks command.
type MasksOptions struct {
	*RootOptions
	Include string
	Exclude string
	Top     int
}

// MaskRow is one frequency-table entry with its member sources resolved
// to names.
type MaskRow struct {
	Mask    string   `json:"mask"` // decimal mask value
	Degree  int      `json:"degree"`
	Sources []string `json:"sources"`
	Words   int      `json:"words"`
}

// MasksResult holds the full output of the masks command.
type MasksResult struct {
	Sources []string             `json:"sources"` // ordinal order
	Degrees []stats.DegreeBucket `json:"degrees"`
	Masks   []MaskRow            `json:"masks"`
}

// NewMasksCommand creates the masks command.
func NewMasksCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MasksOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "masks",
		Short: "Show the membership-mask frequency table",
		Long: `Show the membership-mask frequency table for the selected sources:
the degree histogram (how many sources agree on a word) and the
largest intersections by word count.

Mask bit i corresponds to the i-th selected source; tie-breaks order
equal counts by ascending mask value, so output is reproducible.

Examples:
  lexstat masks
  lexstat masks --top 10
  lexstat masks --include dictA,dictB,wikiX`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMasks(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Include, "include", "", "comma-separated source names to include (empty = all)")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", "comma-separated source names to exclude")
	cmd.Flags().IntVar(&opts.Top, "top", 0, "largest K intersections to show (0 = all)")

	return cmd
}

func runMasks(opts *MasksOptions, cmd *cobra.Command) error {
	sel, err := loadSelection(opts.RootOptions, opts.Include, opts.Exclude)
	if err != nil {
		return err
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

	result := &MasksResult{
		Sources: agg.Names(),
		Degrees: agg.DegreeHistogram(),
	}
	for _, mc := range agg.TopIntersections(opts.Top) {
		result.Masks = append(result.Masks, MaskRow{
			Mask:    mc.Mask.String(),
			Degree:  mc.Mask.Degree(),
			Sources: agg.Members(mc.Mask),
			Words:   mc.Words,
		})
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(result, func(w io.Writer) {
		rows := make([][]string, 0, len(result.Degrees))
		for _, d := range result.Degrees {
			rows = append(rows, []string{
				strconv.Itoa(d.Degree),
				formatCount(d.Masks),
				formatCount(d.Words),
			})
		}
		renderTable(w, "Degree histogram (sources agreeing per word)",
			[]string{"degree", "masks", "words"}, rows)

		rows = rows[:0]
		for _, m := range result.Masks {
			rows = append(rows, []string{
				m.Mask,
				strconv.Itoa(m.Degree),
				formatCount(m.Words),
				strings.Join(m.Sources, ","),
			})
		}
		renderTable(w, "Intersections by word count",
			[]string{"mask", "degree", "words", "sources"}, rows)
	})
}
