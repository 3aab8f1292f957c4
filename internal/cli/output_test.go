package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]int{"union": 42}
	err := formatter.Success(data, func(w io.Writer) {
		t.Fatal("render must not run for JSON output")
	})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Success(nil, func(w io.Writer) {
		fmt.Fprintln(w, "4 words")
	})
	require.NoError(t, err)
	assert.Equal(t, "4 words\n", buf.String())
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:  "text",
				Writer:  buf,
				Verbose: tt.verbose,
			}

			formatter.VerboseLog("reading %s", "alpha.txt")

			if tt.wantLog {
				assert.Contains(t, buf.String(), "reading alpha.txt")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestOutputFormatter_VerboseLogToErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "json",
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   true,
	}

	formatter.VerboseLog("progress")
	assert.Empty(t, out.String(), "diagnostics must not corrupt JSON output")
	assert.Contains(t, errOut.String(), "progress")
}

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitCommandError, "bad flags")
	assert.Equal(t, "bad flags", plain.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(plain))

	inner := errors.New("boom")
	wrapped := WrapExitError(ExitFailure, "running", inner)
	assert.Equal(t, "running: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, inner)
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))

	assert.Equal(t, ExitFailure, GetExitCode(errors.New("untyped")))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", formatCount(0))
	assert.Equal(t, "999", formatCount(999))
	assert.Equal(t, "1,000", formatCount(1000))
	assert.Equal(t, "1,234,567", formatCount(1234567))
}

func TestRenderTable(t *testing.T) {
	buf := &bytes.Buffer{}
	renderTable(buf, "Sizes", []string{"name", "count"}, [][]string{
		{"alpha", "12"},
		{"b", "3"},
	})

	want := "Sizes\n" +
		"  name  count\n" +
		"  alpha 12\n" +
		"  b     3\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTableWideRunes(t *testing.T) {
	buf := &bytes.Buffer{}
	renderTable(buf, "Words", []string{"word", "n"}, [][]string{
		{"丙丁戊", "1"},
		{"long-ascii", "2"},
	})

	// Widths count runes, not bytes, so the CJK row pads with more
	// spaces than its byte length suggests.
	want := "Words\n" +
		"  word       n\n" +
		"  丙丁戊        1\n" +
		"  long-ascii 2\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}
