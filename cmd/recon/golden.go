package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

func golden(cc *cli.Context, got []byte, file string) error {
	want, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read golden file: %w", err)
	}
	if bytes.Equal(got, want) {
		okColor.Fprintf(cc.Out, "%s: ok\n", file)
		return nil
	}
	failColor.Fprintf(cc.Out, "%s: differs\n", file)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(want), string(got), false))
	if color.NoColor {
		writeDiff(cc.Out, diffs)
	} else {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	}
	return cli.ExitCodeErr(1)
}

// writeDiff writes diffs without escapes, deletions as [-x-] and insertions
// as {+x+}.
func writeDiff(w io.Writer, diffs []diffmatchpatch.Diff) {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
