package main

import (
	"strings"
	"testing"

	"github.com/signadot/go-recon/format"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestInFormat(t *testing.T) {
	yaml := format.YAMLFormat
	tests := []struct {
		name     string
		cfg      *MainConfig
		file     string
		expected format.Format
	}{
		{"suffix json", &MainConfig{}, "a/b.json", format.JSONFormat},
		{"suffix yml", &MainConfig{}, "b.yml", format.YAMLFormat},
		{"suffix expr", &MainConfig{}, "x.expr", format.ExprFormat},
		{"stdin", &MainConfig{}, "-", format.JSONFormat},
		{"unknown suffix", &MainConfig{}, "notes.txt", format.JSONFormat},
		{"flag wins", &MainConfig{InFormat: &yaml}, "a.json", format.YAMLFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.inFormat(tt.file); got != tt.expected {
				t.Errorf("got %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestWriteDiff(t *testing.T) {
	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "{a:"},
		{Type: diffmatchpatch.DiffDelete, Text: "1"},
		{Type: diffmatchpatch.DiffInsert, Text: "2"},
		{Type: diffmatchpatch.DiffEqual, Text: "}"},
	}
	var b strings.Builder
	writeDiff(&b, diffs)
	if got := b.String(); got != "{a:[-1-]{+2+}}\n" {
		t.Errorf("got %q", got)
	}
}
