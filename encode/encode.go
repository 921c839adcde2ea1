package encode

import (
	"context"
	"fmt"
	"io"

	"github.com/signadot/go-recon/codec"
	"github.com/signadot/go-recon/debug"
	"github.com/signadot/go-recon/ir"
)

type EncState struct {
	chunk   int
	block   bool
	newline bool
	verify  bool

	recon Recon
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{chunk: codec.DefaultChunk}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Size() {
		es.verify = true
	}
	return es
}

func (es *EncState) writer(node *ir.Node) codec.Writer {
	if es.block {
		return es.recon.WriteBlock(node)
	}
	return es.recon.WriterFor(node)
}

func (es *EncState) size(node *ir.Node) int {
	if es.block {
		return es.recon.SizeOfBlock(node)
	}
	return es.recon.SizeOf(node)
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	return EncodeContext(context.Background(), node, w, opts...)
}

// EncodeContext writes node to w as Recon text.  The writer is pulled with
// a fixed capacity per pull, see Chunk, and ctx is checked between pulls.
func EncodeContext(ctx context.Context, node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	n, err := codec.WriteTo(ctx, w, es.writer(node), es.chunk)
	if err != nil {
		return err
	}
	if es.verify {
		if size := es.size(node); int64(size) != n {
			return fmt.Errorf("%w: predicted %d bytes, wrote %d", ErrSizeMismatch, size, n)
		}
	}
	if es.newline {
		if _, err := w.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the number of bytes Encode writes for node, not counting
// the newline added by Newline.
func Size(node *ir.Node, opts ...EncodeOption) int {
	return newEncState(opts).size(node)
}

// NewWriter returns an unstarted writer for node, for callers who drive
// writing themselves.
func NewWriter(node *ir.Node, opts ...EncodeOption) codec.Writer {
	return newEncState(opts).writer(node)
}
