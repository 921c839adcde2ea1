package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/go-recon/encode"
	"github.com/signadot/go-recon/format"
	"github.com/signadot/go-recon/parse"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Gops  bool `cli:"name=gops desc='start the gops diagnostics agent'"`
	Color bool `cli:"name=color desc='color status output even when not on a terminal'"`

	InFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat returns the format of file: -I if given, else by suffix, else
// json.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := format.FromSuffix(filepath.Ext(file)); ok {
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(file))}
}

// setColor enables status colors when the output is a terminal or -color
// is given.
func (cfg *MainConfig) setColor(cc *cli.Context) {
	if cfg.Color {
		color.NoColor = false
		return
	}
	var w io.Writer = cc.Out
	f, ok := w.(*os.File)
	color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
}

type EncodeConfig struct {
	*MainConfig

	Chunk  int    `cli:"name=chunk desc='bytes granted to the writer per pull'"`
	Block  bool   `cli:"name=block desc='write top level records without braces'"`
	Zstd   bool   `cli:"name=z desc='zstd compress the output'"`
	Patch  string `cli:"name=p aliases=patch desc='json patch file applied before encoding'"`
	Golden string `cli:"name=golden desc='compare output with this file'"`
	Check  bool   `cli:"name=check desc='reject ambiguous or malformed input'"`

	Encode *cli.Command
}

func (cfg *EncodeConfig) parseOpts(file string) ([]parse.ParseOption, error) {
	res := cfg.MainConfig.parseOpts(file)
	if cfg.Patch == "" {
		return res, nil
	}
	p, err := os.ReadFile(cfg.Patch)
	if err != nil {
		return nil, fmt.Errorf("could not read patch: %w", err)
	}
	return append(res, parse.ParsePatch(p)), nil
}

func (cfg *EncodeConfig) encOpts() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.Chunk(cfg.Chunk),
		encode.Block(cfg.Block),
		encode.Newline(true),
	}
}

type SizeConfig struct {
	*MainConfig
	Block bool `cli:"name=block desc='size top level records without braces'"`

	Size *cli.Command
}

type ExprConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='reject ambiguous expressions'"`

	Expr *cli.Command
}
