package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/lexstat/internal/stream"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Include string
	Exclude string
	Out     string
	Sort    bool
}

// BuildResult summarizes a written union word list.
type BuildResult struct {
	Sources []stream.SourceCount `json:"sources"`
	Union   int                  `json:"union"`
	Out     string               `json:"out"`
	Sorted  bool                 `json:"sorted"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the deduplicated union word list",
		Long: `Merge the selected sources into one deduplicated word list and write
it to a file, one word per line. Sorted by default (byte-wise UTF-8
order); pass --sort=false for arbitrary order when only the content
matters.

Examples:
  lexstat build --out lexicon.txt
  lexstat build --out lexicon.txt --exclude wikiX --sort=false`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Include, "include", "", "comma-separated source names to include (empty = all)")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", "comma-separated source names to exclude")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output file (required)")
	cmd.Flags().BoolVar(&opts.Sort, "sort", true, "sort the output word list")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runBuild(opts *BuildOptions, cmd *cobra.Command) error {
	sel, err := loadSelection(opts.RootOptions, opts.Include, opts.Exclude)
	if err != nil {
		return err
	}

	unionStats, err := stream.Union(sel.Sources())
	if err != nil {
		return asExitError(err)
	}
	words, err := stream.Words(sel.Sources())
	if err != nil {
		return asExitError(err)
	}
	if opts.Sort {
		sort.Strings(words)
	}

	if dir := filepath.Dir(opts.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return WrapExitError(ExitCommandError, "creating output directory", err)
		}
	}
	var data string
	if len(words) > 0 {
		data = strings.Join(words, "\n") + "\n"
	}
	if err := os.WriteFile(opts.Out, []byte(data), 0o644); err != nil {
		return WrapExitError(ExitCommandError, "writing output", err)
	}
	slog.Debug("union written", "out", opts.Out, "words", len(words))

	result := &BuildResult{
		Sources: unionStats.Sources,
		Union:   unionStats.Union,
		Out:     opts.Out,
		Sorted:  opts.Sort,
	}
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(result, func(w io.Writer) {
		rows := make([][]string, 0, len(result.Sources)+1)
		for _, s := range result.Sources {
			rows = append(rows, []string{s.Name, formatCount(s.Words)})
		}
		rows = append(rows, []string{"UNION", formatCount(result.Union)})
		renderTable(w, "Build result", []string{"source", "count"}, rows)
		fmt.Fprintf(w, "Wrote %s\n", result.Out)
	})
}
