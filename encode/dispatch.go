package encode

import "github.com/signadot/go-recon/codec"

// Dispatch reports what operator writers need to know about an item: its
// precedence, the exact number of bytes it writes, and a writer for it.
//
// WriterFor returns an unstarted writer; callers pull it with their own
// output.  SizeOf must equal the number of bytes that writer emits.
type Dispatch[I any] interface {
	Precedence(item I) int
	SizeOf(item I) int
	WriterFor(item I) codec.Writer
}

// emit writes c if out has capacity, reporting whether it did.
func emit(out codec.Output, c byte) (codec.Output, bool) {
	if !out.IsCont() {
		return out, false
	}
	return out.Write(c), true
}

// parens returns the number of bytes added by wrapping an operand.
func parens(wrap bool) int {
	if wrap {
		return 2
	}
	return 0
}
