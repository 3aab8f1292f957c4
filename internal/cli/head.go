package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/lexstat/internal/stream"
)

// HeadOptions holds flags for the head command.
type HeadOptions struct {
	*RootOptions
	Include string
	Exclude string
	N       int
}

// NewHeadCommand creates the head command.
func NewHeadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HeadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "head",
		Short: "Print the N smallest words of the union",
		Long: `Print the N lexicographically smallest distinct words across the
selected sources. Ordering is byte-wise UTF-8 comparison, which equals
code-point order for valid UTF-8.

The union is streamed through a bounded selection heap, so cost grows
with N, not with the corpus.

Examples:
  lexstat head -n 30
  lexstat head -n 100 --include dictA`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHead(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Include, "include", "", "comma-separated source names to include (empty = all)")
	cmd.Flags().StringVar(&opts.Exclude, "exclude", "", "comma-separated source names to exclude")
	cmd.Flags().IntVarP(&opts.N, "num", "n", 30, "how many words to print")

	return cmd
}

func runHead(opts *HeadOptions, cmd *cobra.Command) error {
	sel, err := loadSelection(opts.RootOptions, opts.Include, opts.Exclude)
	if err != nil {
		return err
	}

	words, err := stream.Head(sel.Sources(), opts.N)
	if err != nil {
		return asExitError(err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(words, func(w io.Writer) {
		for _, word := range words {
			fmt.Fprintln(w, word)
		}
	})
}
