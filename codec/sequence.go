package codec

// SequenceWriter pulls a series of writers in order.  The writer for each
// position is created when the position is first reached.
type SequenceWriter struct {
	Cont
	n     int
	at    func(i int) Writer
	index int
	part  Writer
}

// Sequence returns a Writer which writes at(0), ..., at(n-1) in order.  at
// must return a fresh unstarted Writer each time it is called and must not
// depend on mutable state.
func Sequence(n int, at func(i int) Writer) Writer {
	if n <= 0 {
		return Done()
	}
	return &SequenceWriter{n: n, at: at}
}

// Concat returns a Writer which writes ws in order.
func Concat(ws ...Writer) Writer {
	return Sequence(len(ws), func(i int) Writer { return ws[i] })
}

func (w *SequenceWriter) Pull(out Output) Writer {
	return writeSequence(out, w.n, w.at, w.index, w.part)
}

func writeSequence(out Output, n int, at func(int) Writer, i int, part Writer) Writer {
	for i < n {
		if part == nil {
			part = at(i)
		}
		part = part.Pull(out)
		if part.IsError() {
			return part
		}
		if !part.IsDone() {
			break
		}
		part = nil
		i++
	}
	if i == n {
		return Done()
	}
	return Suspend(out, &SequenceWriter{n: n, at: at, index: i, part: part})
}
