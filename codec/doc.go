// Package codec provides the resumable writer protocol used to emit Recon
// text into destinations with limited capacity.
//
// # Outputs
//
// An [Output] is a write cursor that accepts one byte at a time and reports
// whether it can accept more:
//
//   - Cont: capacity is available now
//   - Full: no capacity now, more may be granted later
//   - Done: closed, no more capacity will ever be available
//   - Error: faulted, the cause is available from Trap
//
// [Buffer] is the in-memory Output used by the pump and by tests.
//
// # Writers
//
// A [Writer] emits one item. Pulling a writer with an Output consumes as
// much capacity as is available and returns either [Done], an [Error], or a
// new suspended Writer holding exactly the remaining work. Writers are never
// mutated; callers keep the returned value and drop the old one.
//
//	w := codec.WriteString("hello")
//	buf := codec.NewBuffer(2)
//	w = w.Pull(buf) // buf holds "he", w is suspended
//	buf.Grant(3)
//	w = w.Pull(buf) // buf holds "hello", w.IsDone()
//
// [WriteTo] drives a Writer to completion into an io.Writer using a fixed
// chunk capacity per pull.
//
// # Related Packages
//
//   - github.com/signadot/go-recon/encode - Recon item writers
package codec
