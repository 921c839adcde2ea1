package main

import (
	"github.com/signadot/go-recon/encode"
	"github.com/signadot/go-recon/gomap"
	"github.com/signadot/go-recon/ir"

	"github.com/scott-cotton/cli"
)

type sizeReport struct {
	File string  `recon:"doc,attr"`
	Type ir.Type `recon:"type"`
	Size int     `recon:"size"`
}

func sizeCmd(cfg *SizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Size.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		node, err := readNode(cc, file, cfg.parseOpts(file)...)
		if err != nil {
			return err
		}
		report, err := gomap.ToIR(sizeReport{
			File: file,
			Type: node.Type,
			Size: encode.Size(node, encode.Block(cfg.Block)),
		})
		if err != nil {
			return err
		}
		if err := encode.Encode(report, cc.Out, encode.Newline(true)); err != nil {
			return err
		}
	}
	return nil
}
