package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/lexstat/internal/registry"
)

// SourcesOptions holds flags for the sources command.
type SourcesOptions struct {
	*RootOptions
	Counts  bool
	ShowRef bool
}

// SourceStatus is one registry entry with its word-file status.
type SourceStatus struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Ref    string `json:"ref,omitempty"`
	File   string `json:"file"`
	Status string `json:"status"` // "OK" or "MISSING"
	Count  int    `json:"count,omitempty"`
}

// NewSourcesCommand creates the sources command.
func NewSourcesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SourcesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List registry sources and their word-file status",
		Long: `List the sources declared in the registry file, in declaration order,
with the status of each source's word file.

Examples:
  lexstat sources
  lexstat sources --counts --show-ref`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSources(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Counts, "counts", false, "also show word-file line counts")
	cmd.Flags().BoolVar(&opts.ShowRef, "show-ref", false, "also show the ref column")

	return cmd
}

func runSources(opts *SourcesOptions, cmd *cobra.Command) error {
	reg, err := loadRegistry(opts.RootOptions)
	if err != nil {
		return err
	}

	statuses := make([]SourceStatus, 0, len(reg.Entries()))
	for _, e := range reg.Entries() {
		path := reg.Path(e)
		st := SourceStatus{Name: e.Name, Type: e.Type, File: path, Status: "OK"}
		if opts.ShowRef {
			st.Ref = e.Ref
		}
		count, err := registry.CountLines(path)
		if err != nil {
			st.Status = "MISSING"
		} else if opts.Counts {
			st.Count = count
		}
		statuses = append(statuses, st)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	return formatter.Success(statuses, func(w io.Writer) {
		headers := []string{"name", "type"}
		if opts.ShowRef {
			headers = append(headers, "ref")
		}
		headers = append(headers, "file", "status")
		if opts.Counts {
			headers = append(headers, "count")
		}

		rows := make([][]string, 0, len(statuses))
		for _, st := range statuses {
			row := []string{st.Name, st.Type}
			if opts.ShowRef {
				row = append(row, st.Ref)
			}
			row = append(row, st.File, st.Status)
			if opts.Counts {
				cell := "-"
				if st.Status == "OK" {
					cell = strconv.Itoa(st.Count)
				}
				row = append(row, cell)
			}
			rows = append(rows, row)
		}
		renderTable(w, "Sources", headers, rows)
	})
}
