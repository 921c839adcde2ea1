package codec

// Unbounded is the capacity of a Buffer which accepts any number of bytes.
const Unbounded = -1

// Buffer is an in-memory Output.  It accepts bytes while it holds granted
// capacity.  When the capacity is used up the Buffer is Full, unless it has
// been closed, in which case it is Done.
type Buffer struct {
	buf    []byte
	avail  int
	closed bool
	err    error
}

// NewBuffer returns a Buffer granting capacity bytes, or any number of bytes
// if capacity is Unbounded.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{avail: capacity}
}

// Grant adds n bytes of capacity.  It has no effect on an unbounded Buffer.
func (b *Buffer) Grant(n int) *Buffer {
	if b.avail != Unbounded && n > 0 {
		b.avail += n
	}
	return b
}

// Close marks the Buffer as receiving no further capacity.  Capacity already
// granted may still be used.
func (b *Buffer) Close() *Buffer {
	b.closed = true
	if b.avail == Unbounded {
		b.avail = 0
	}
	return b
}

// Fail faults the Buffer with err.
func (b *Buffer) Fail(err error) *Buffer {
	b.err = err
	return b
}

// Reset discards the written bytes, keeping capacity and state.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

func (b *Buffer) Bytes() []byte  { return b.buf }
func (b *Buffer) String() string { return string(b.buf) }
func (b *Buffer) Len() int       { return len(b.buf) }

// Available returns the remaining granted capacity, or Unbounded.
func (b *Buffer) Available() int { return b.avail }

func (b *Buffer) IsCont() bool {
	return b.err == nil && b.avail != 0
}

func (b *Buffer) IsFull() bool {
	return b.err == nil && b.avail == 0 && !b.closed
}

func (b *Buffer) IsDone() bool {
	return b.err == nil && b.avail == 0 && b.closed
}

func (b *Buffer) IsError() bool {
	return b.err != nil
}

func (b *Buffer) Write(c byte) Output {
	if !b.IsCont() {
		return b
	}
	b.buf = append(b.buf, c)
	if b.avail > 0 {
		b.avail--
	}
	return b
}

func (b *Buffer) Trap() error {
	return b.err
}
