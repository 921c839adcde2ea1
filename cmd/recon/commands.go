package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/go-recon/codec"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y, expr/e (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "recon").
		WithSynopsis("recon [opts] command [opts]").
		WithDescription("recon converts json, yaml and expressions to Recon text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return reconMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			SizeCommand(cfg),
			ExprCommand(cfg))
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg, Chunk: codec.DefaultChunk}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [opts] [files]").
		WithDescription(encodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
}

const encodeDescription = `encode reads documents and writes them as Recon text.

Each file is one document; with no files, stdin is read.  The input format
is taken from -I, then from the file suffix (.json, .yaml, .yml, .expr), and
defaults to json.

-p applies a JSON patch (RFC 6902, in json or yaml) to each document before
it is encoded.  -golden compares the output with the contents of a file and
prints a diff when they differ, exiting with status 1.`

func SizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Size, "size").
		WithAliases("s").
		WithSynopsis("size [files]").
		WithDescription("print a record giving the Recon text size of each document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sizeCmd(cfg, cc, args)
		})
}

func ExprCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExprConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Expr, "expr").
		WithAliases("x").
		WithSynopsis("expr [opts] <expr> [exprs]").
		WithDescription("encode expression arguments as Recon operator text").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exprCmd(cfg, cc, args)
		})
}
