package main

import (
	"fmt"

	"github.com/signadot/go-recon/encode"
	"github.com/signadot/go-recon/ir"
	"github.com/signadot/go-recon/parse"

	"github.com/scott-cotton/cli"
)

func exprCmd(cfg *ExprConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expr.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: expr requires at least one expression", cli.ErrUsage)
	}
	for _, a := range args {
		node, err := parse.Parse([]byte(a), parse.ParseExpr())
		if err != nil {
			return fmt.Errorf("error decoding %q: %w", a, err)
		}
		if cfg.Check {
			if err := ir.Check(node); err != nil {
				return fmt.Errorf("%q: %w", a, err)
			}
		}
		if err := encode.Encode(node, cc.Out, encode.Newline(true)); err != nil {
			return err
		}
	}
	return nil
}
