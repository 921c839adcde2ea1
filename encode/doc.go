// Package encode writes IR nodes as Recon text.
//
// # Usage
//
//	node := ir.Infix(ir.Ref("a"), "+", ir.Infix(ir.Ref("b"), "*", ir.FromInt(2)))
//	err := encode.Encode(node, os.Stdout) // $a + $b * 2
//
//	// predict the size without writing
//	n := encode.Size(node)
//
// # Resumable Writing
//
// Every item is written by a [codec.Writer].  [NewWriter] returns one for
// callers that manage their own output capacity:
//
//	w := encode.NewWriter(node)
//	buf := codec.NewBuffer(0)
//	for !w.IsDone() && !w.IsError() {
//	    buf.Grant(16)
//	    w = w.Pull(buf)
//	}
//
// # Operators
//
// [WriteInfix], [WritePrefix] and [WriteConditional] are generic over the
// item type and learn about their operands through a [Dispatch].  [Recon]
// is the Dispatch for ir nodes.  An operand is parenthesized when its
// precedence is strictly lower than the precedence it nests under; equal
// precedence is never parenthesized.
//
// # Related Packages
//
//   - github.com/signadot/go-recon/codec - Output and Writer protocol
//   - github.com/signadot/go-recon/ir - Item tree and precedence table
package encode
