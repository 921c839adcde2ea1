package codec

import "errors"

var (
	// ErrTruncated is the fault of a Writer whose Output closed before the
	// item was fully written.
	ErrTruncated = errors.New("truncated")

	// ErrStalled is returned by WriteTo when a pull makes no progress even
	// though capacity is available.
	ErrStalled = errors.New("writer stalled")
)

// Writer is a resumable producer of the bytes of one item.
//
// Pull writes as much as out can accept and returns Done when the item is
// complete, an Error when out faulted or closed early or a nested writer
// failed, and otherwise a new Writer holding the remaining work.  A Writer
// is never modified by Pull.  Pulling a terminal Writer returns it unchanged.
type Writer interface {
	Pull(out Output) Writer
	IsCont() bool
	IsDone() bool
	IsError() bool
	Trap() error
}

// Done returns the terminal Writer of a completed item.
func Done() Writer {
	return doneWriter{}
}

// Error returns the terminal Writer of a failed item.
func Error(err error) Writer {
	return &errorWriter{err: err}
}

// Suspend ends a pull which did not complete its item.  It reports
// ErrTruncated if out is closed, forwards the cause if out faulted, and
// returns next otherwise.
func Suspend(out Output, next Writer) Writer {
	if out.IsDone() {
		return Error(ErrTruncated)
	}
	if out.IsError() {
		return Error(out.Trap())
	}
	return next
}

type doneWriter struct{}

func (w doneWriter) Pull(Output) Writer { return w }
func (doneWriter) IsCont() bool         { return false }
func (doneWriter) IsDone() bool         { return true }
func (doneWriter) IsError() bool        { return false }
func (doneWriter) Trap() error          { return nil }

type errorWriter struct {
	err error
}

func (w *errorWriter) Pull(Output) Writer { return w }
func (*errorWriter) IsCont() bool         { return false }
func (*errorWriter) IsDone() bool         { return false }
func (*errorWriter) IsError() bool        { return true }
func (w *errorWriter) Trap() error        { return w.err }

// Cont is embedded by suspended Writers to report their state.
type Cont struct{}

func (Cont) IsCont() bool  { return true }
func (Cont) IsDone() bool  { return false }
func (Cont) IsError() bool { return false }
func (Cont) Trap() error   { return nil }
