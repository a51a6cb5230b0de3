package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Table renders rows of data in aligned columns.
type Table struct {
	out    io.Writer
	buf    bytes.Buffer
	w      *tabwriter.Writer
	styled bool
}

// NewTable creates a table writer with the given column headers. When
// styled is set the aligned header line is rendered bold.
func NewTable(out io.Writer, styled bool, headers ...string) *Table {
	t := &Table{out: out, styled: styled}
	t.w = tabwriter.NewWriter(&t.buf, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(t.w, strings.Join(headers, "\t"))
	return t
}

// Row appends a row of values.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush aligns the buffered rows and writes them out.
func (t *Table) Flush() error {
	if err := t.w.Flush(); err != nil {
		return err
	}
	text := t.buf.String()
	t.buf.Reset()
	if t.styled {
		header, rest, _ := strings.Cut(text, "\n")
		text = headerStyle.Render(header) + "\n" + rest
	}
	_, err := io.WriteString(t.out, text)
	return err
}
