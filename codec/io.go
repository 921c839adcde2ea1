package codec

import (
	"context"
	"fmt"
	"io"

	"github.com/signadot/go-recon/debug"
)

// DefaultChunk is the capacity granted per pull by WriteTo when chunk <= 0.
const DefaultChunk = 4096

// WriteTo drives wr to completion, granting chunk bytes of capacity per pull
// and copying each chunk to w.  It returns the number of bytes written to w.
//
// The writer's fault is returned as is.  Errors from w and from ctx are
// returned as is and abandon the writer.
func WriteTo(ctx context.Context, w io.Writer, wr Writer, chunk int) (int64, error) {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	buf := NewBuffer(0)
	buf.buf = make([]byte, 0, chunk)
	var (
		total int64
		pulls int
	)
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		buf.Reset()
		buf.Grant(chunk - buf.Available())
		wr = wr.Pull(buf)
		pulls++
		if debug.Pull() {
			debug.Logf("pull %d: wrote %d bytes, done=%t err=%t", pulls, buf.Len(), wr.IsDone(), wr.IsError())
		}
		if buf.Len() > 0 {
			n, err := w.Write(buf.Bytes())
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		switch {
		case wr.IsDone():
			return total, nil
		case wr.IsError():
			return total, wr.Trap()
		case buf.Len() == 0:
			return total, fmt.Errorf("%w after %d bytes", ErrStalled, total)
		}
	}
}

// Drain drives wr to completion into memory, pulling with chunk bytes of
// capacity at a time, and returns the bytes written.
func Drain(wr Writer, chunk int) ([]byte, error) {
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	buf := NewBuffer(0)
	for {
		before := buf.Len()
		buf.Grant(chunk - buf.Available())
		wr = wr.Pull(buf)
		switch {
		case wr.IsDone():
			return buf.Bytes(), nil
		case wr.IsError():
			return buf.Bytes(), wr.Trap()
		case buf.Len() == before:
			return buf.Bytes(), fmt.Errorf("%w after %d bytes", ErrStalled, before)
		}
	}
}
