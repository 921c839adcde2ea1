package codec

// Output is a capacity reporting write cursor over a destination.
//
// Exactly one of IsCont, IsFull, IsDone and IsError holds at any time.
// Write is only meaningful when IsCont holds; otherwise it is ignored.
type Output interface {
	IsCont() bool
	IsFull() bool
	IsDone() bool
	IsError() bool
	Write(b byte) Output
	Trap() error
}

// Closed returns an Output which is permanently done.
func Closed() Output {
	return closedOutput{}
}

// Failed returns an Output which is permanently faulted with err.
func Failed(err error) Output {
	return failedOutput{err: err}
}

type closedOutput struct{}

func (closedOutput) IsCont() bool        { return false }
func (closedOutput) IsFull() bool        { return false }
func (closedOutput) IsDone() bool        { return true }
func (closedOutput) IsError() bool       { return false }
func (o closedOutput) Write(byte) Output { return o }
func (closedOutput) Trap() error         { return nil }

type failedOutput struct{ err error }

func (failedOutput) IsCont() bool        { return false }
func (failedOutput) IsFull() bool        { return false }
func (failedOutput) IsDone() bool        { return false }
func (failedOutput) IsError() bool       { return true }
func (o failedOutput) Write(byte) Output { return o }
func (o failedOutput) Trap() error       { return o.err }
