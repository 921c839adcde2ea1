package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/signadot/go-recon/encode"
	"github.com/signadot/go-recon/ir"
	"github.com/signadot/go-recon/parse"

	"github.com/klauspost/compress/zstd"
	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Chunk <= 0 {
		return fmt.Errorf("%w: -chunk must be positive, got %d", cli.ErrUsage, cfg.Chunk)
	}
	if cfg.Zstd && cfg.Golden != "" {
		return fmt.Errorf("%w: -z and -golden are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		w   io.Writer = cc.Out
		got bytes.Buffer
	)
	if cfg.Golden != "" {
		w = &got
	}
	var zw *zstd.Encoder
	if cfg.Zstd {
		zw, err = zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("could not create zstd writer: %w", err)
		}
		w = zw
	}
	for _, file := range args {
		if err := encodeFile(ctx, cfg, cc, w, file); err != nil {
			if zw != nil {
				zw.Close()
			}
			return err
		}
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("error finishing zstd stream: %w", err)
		}
	}
	if cfg.Golden != "" {
		return golden(cc, got.Bytes(), cfg.Golden)
	}
	return nil
}

func encodeFile(ctx context.Context, cfg *EncodeConfig, cc *cli.Context, w io.Writer, file string) error {
	opts, err := cfg.parseOpts(file)
	if err != nil {
		return err
	}
	node, err := readNode(cc, file, opts...)
	if err != nil {
		return err
	}
	if cfg.Check {
		if err := ir.Check(node); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	if err := encode.EncodeContext(ctx, node, w, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}

// readNode parses file, or stdin when file is "-".
func readNode(cc *cli.Context, file string, opts ...parse.ParseOption) (*ir.Node, error) {
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return node, nil
}
