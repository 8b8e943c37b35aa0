// Package key prints the legend for list markers and UI keys.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tasktree/pkg/glyph"
	teaui "tableflip.dev/tasktree/pkg/runner/tea"
)

// Key prints a legend describing markers and UI key bindings.
type Key struct {
	Out io.Writer
}

func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(out, "")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Markers"), bold.Sprint("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Keys"), bold.Sprint("Meaning"))
	for _, b := range teaui.Bindings {
		tbl.AddRow(b.Keys, b.Meaning)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
